package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Server struct {
	ListeningAddress string
	RootURL          string
}

func (s *Server) setDefaults() {
	s.ListeningAddress = gosettings.DefaultComparable(s.ListeningAddress, ":8000")
	s.RootURL = gosettings.DefaultComparable(s.RootURL, "/")
}

func (s Server) Validate() (err error) {
	err = validate.ListeningAddress(s.ListeningAddress, os.Getuid())
	if err != nil {
		return fmt.Errorf("listening address: %w", err)
	}

	err = validatePath(s.RootURL)
	if err != nil {
		return fmt.Errorf("root URL: %w", err)
	}

	return nil
}

func (s Server) String() string {
	return s.toLinesNode().String()
}

func (s Server) toLinesNode() *gotree.Node {
	node := gotree.New("Server")
	node.Appendf("Listening address: %s", s.ListeningAddress)
	node.Appendf("Root URL: %s", s.RootURL)
	return node
}

func (s *Server) read(r *reader.Reader) {
	s.ListeningAddress = r.String("LISTENING_ADDRESS")
	s.RootURL = r.String("ROOT_URL", reader.ForceLowercase(false))
	if s.RootURL != "/" {
		s.RootURL = strings.TrimSuffix(s.RootURL, "/")
	}
}
