package azure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlobURL(t *testing.T) {
	assert := require.New(t)

	url := BlobURL("blobctl1741944413", "blobctl-data-1741944413", "report.pdf")

	assert.Equal("https://blobctl1741944413.blob.core.windows.net/blobctl-data-1741944413/report.pdf", url)
}
