package conshash

import (
	"strconv"
)

// server mirrors what an embedding system usually places on a ring: the
// identity is derived from the address, other fields are payload.
type server struct {
	hostName  string
	ipAddress string
	port      int
	tags      []string
}

func (s *server) Identity() string {
	return s.ipAddress + strconv.Itoa(s.port)
}

func (s *server) Clone() *server {
	cp := *s
	cp.tags = append([]string(nil), s.tags...)
	return &cp
}

var _ Node[*server] = (*server)(nil)

func skynet() *server  { return &server{hostName: "Skynet", ipAddress: "192.168.1.1", port: 42} }
func inferno() *server { return &server{hostName: "Inferno", ipAddress: "10.0.1.1", port: 666} }
func klimt() *server   { return &server{hostName: "Klimt", ipAddress: "127.0.0.1", port: 1} }

// tableHasher places known inputs at fixed positions and everything else at 0.
func tableHasher(table map[string]uint64) Hasher {
	return func(data []byte) uint64 {
		return table[string(data)]
	}
}
