// Package net handles LAN concerns outside the room channel itself:
// advertising a running relay over mDNS, finding one to join, and
// picking the IP address to put in a share link.
package net

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_sketchroom._tcp"

// Advertise announces this relay on the local network so clients can
// join without typing a link. Shut the returned server down when the
// relay exits.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // default ".local" domain
		"", // default OS hostname
		port,
		nil, // auto-detect IPs
		[]string{"sketchroom relay"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse looks for relays on the local network, calling found with
// each host:port it discovers. It returns when the lookup window
// closes.
func Browse(found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	go func() {
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()
	return mdns.Lookup(serviceType, entries)
}
