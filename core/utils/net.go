package utils

import "net"

// LocalIPv4s returns the non-loopback IPv4 addresses of this host. Used to
// build the connect link printed at start-up and served on the root route.
func LocalIPv4s() []string {
	var ips []string

	ifaces, err := net.Interfaces()
	if err != nil {
		return ips
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			if ip == nil || ip.IsLoopback() {
				continue
			}
			ips = append(ips, ip.String())
		}
	}

	return ips
}

// LocalIPv4 returns the first non-loopback IPv4 address, or "localhost" when
// none is found.
func LocalIPv4() string {
	ips := LocalIPv4s()
	if len(ips) == 0 {
		return "localhost"
	}
	return ips[0]
}
