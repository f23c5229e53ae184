package net

import (
	"net"

	"github.com/hashicorp/go-hclog"
)

// OutgoingIP finds the preferred local IP address to put in a share link.
func OutgoingIP(logger hclog.Logger) string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// no route to the internet, fall back to checking local interfaces
		return localIPFallback(logger)
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

func localIPFallback(logger hclog.Logger) string {
	if ip := firstIPv4(); ip != nil {
		return ip.String()
	}
	logger.Warn("no suitable local IP found, share link uses loopback")
	return "127.0.0.1"
}

// firstIPv4 returns the first IPv4 address of an interface that is up and
// not a loopback, or nil.
func firstIPv4() net.IP {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	return nil
}
