package net

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
	"github.com/pkg/errors"
)

// ServiceType is the mDNS service under which editors are announced.
const ServiceType = "_bezierboard._tcp"

// Advertise announces a web editor listening on port. Shut the returned
// server down to withdraw the announcement.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, errors.Wrap(err, "could not get hostname")
	}

	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, []string{"BezierBoard"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mDNS service")
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start mDNS server")
	}
	return server, nil
}

// Browse looks for advertised editors for the given duration and calls found
// with each "ip:port". It returns after the lookup finishes.
func Browse(timeout time.Duration, found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4, e.Port))
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	return errors.Wrap(err, "mDNS lookup")
}
