package deployment

import (
	"fmt"
	"time"
)

const (
	accountPrefix   = "blobctl"
	DefaultLocation = "eastus"
)

// Identity is the set of names for one deployment. It is generated once by
// deploy and is immutable for the lifetime of that deployment.
type Identity struct {
	ResourceGroup  string
	StorageAccount string
	Container      string
	Location       string
}

// NewIdentity derives a deployment identity from the supplied wall-clock
// time. The storage account name is a lowercase alphanumeric prefix plus a
// unix-seconds suffix, which keeps it inside Azure's 3-24 character account
// naming rules by construction. Deploys in different seconds never collide.
func NewIdentity(now time.Time, location string) Identity {
	if location == "" {
		location = DefaultLocation
	}

	suffix := now.Unix()

	return Identity{
		ResourceGroup:  fmt.Sprintf("%s-rg-%d", accountPrefix, suffix),
		StorageAccount: fmt.Sprintf("%s%d", accountPrefix, suffix),
		Container:      fmt.Sprintf("%s-data-%d", accountPrefix, suffix),
		Location:       location,
	}
}
