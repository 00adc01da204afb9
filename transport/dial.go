package transport

import (
	"fmt"
	"net"
)

// Dial binds a UDP socket on self and associates it with exactly one peer.
// There is no discovery: the peer address is fixed configuration. The
// returned conn only accepts datagrams from that peer.
func Dial(self, peer string) (*net.UDPConn, error) {
	laddr, err := net.ResolveUDPAddr("udp", self)
	if err != nil {
		return nil, fmt.Errorf("resolve local address %q: %w", self, err)
	}
	raddr, err := net.ResolveUDPAddr("udp", peer)
	if err != nil {
		return nil, fmt.Errorf("resolve peer address %q: %w", peer, err)
	}
	conn, err := net.DialUDP("udp", laddr, raddr)
	if err != nil {
		return nil, fmt.Errorf("bind %s to peer %s: %w", self, peer, err)
	}
	return conn, nil
}
