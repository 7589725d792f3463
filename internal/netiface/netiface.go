// Package netiface enumerates network interfaces so the CLI can bind the
// server to a VPN or overlay interface by name or name prefix.
package netiface

import (
	"fmt"
	"net"
	"strings"
)

// Interface pairs an interface name with its primary IPv4 address.
type Interface struct {
	Name    string
	Address string
}

// List returns all interfaces that are up and carry an IPv4 address.
func List() ([]Interface, error) {
	system, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	var out []Interface
	for _, iface := range system {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ip := addrIPv4(addr)
			if ip == "" {
				continue
			}
			out = append(out, Interface{Name: iface.Name, Address: ip})
			break
		}
	}
	return out, nil
}

// AddressByName returns the IPv4 address of the named interface.
func AddressByName(name string) (string, error) {
	name = strings.TrimSpace(name)
	ifaces, err := List()
	if err != nil {
		return "", err
	}
	for _, iface := range ifaces {
		if iface.Name == name {
			return iface.Address, nil
		}
	}
	return "", fmt.Errorf("no interface %q with an IPv4 address", name)
}

// FirstByPrefix returns the first interface whose name matches prefix.
// Useful for overlays like ZeroTier where interface names are dynamic.
func FirstByPrefix(prefix string) (Interface, error) {
	ifaces, err := List()
	if err != nil {
		return Interface{}, err
	}
	iface, ok := firstMatch(ifaces, prefix)
	if !ok {
		return Interface{}, fmt.Errorf("no interface matching prefix %q with an IPv4 address", prefix)
	}
	return iface, nil
}

func firstMatch(ifaces []Interface, prefix string) (Interface, bool) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return Interface{}, false
	}
	for _, iface := range ifaces {
		if strings.HasPrefix(iface.Name, prefix) {
			return iface, true
		}
	}
	return Interface{}, false
}

func addrIPv4(addr net.Addr) string {
	var ip net.IP
	switch v := addr.(type) {
	case *net.IPNet:
		ip = v.IP
	case *net.IPAddr:
		ip = v.IP
	}
	if ip == nil {
		return ""
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.String()
	}
	return ""
}
