// Package settings defines the program settings with their defaults,
// merging rules and validation.
package settings

import (
	"fmt"

	"github.com/qdm12/gotree"

	"ddnsc/internal/lookup"
	"ddnsc/internal/shoutrrr"
)

type Settings struct {
	Client   Client
	Update   Update
	PubIP    PubIP
	Provider Provider
	Resolver lookup.Settings
	Logger   Logger
	Shoutrrr shoutrrr.Settings
}

func (s *Settings) SetDefaults() {
	s.Client.setDefaults()
	s.Update.setDefaults()
	s.PubIP.setDefaults()
	s.Provider.setDefaults()
	s.Resolver.SetDefaults()
	s.Logger.setDefaults()
	s.Shoutrrr.SetDefaults()
}

func (s Settings) MergeWith(other Settings) (merged Settings) {
	merged.Client = s.Client.mergeWith(other.Client)
	merged.Update = s.Update.mergeWith(other.Update)
	merged.PubIP = s.PubIP.mergeWith(other.PubIP)
	merged.Provider = s.Provider.mergeWith(other.Provider)
	merged.Resolver = s.Resolver.MergeWith(other.Resolver)
	merged.Logger = s.Logger.mergeWith(other.Logger)
	merged.Shoutrrr = s.Shoutrrr.MergeWith(other.Shoutrrr)
	return merged
}

func (s Settings) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":    &s.Client,
		"update":    &s.Update,
		"public ip": &s.PubIP,
		"provider":  &s.Provider,
		"resolver":  &s.Resolver,
		"logger":    &s.Logger,
		"shoutrrr":  &s.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (s Settings) String() string {
	return s.toLinesNode().String()
}

func (s Settings) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(s.Provider.toLinesNode())
	node.AppendNode(s.Update.toLinesNode())
	node.AppendNode(s.PubIP.toLinesNode())
	node.AppendNode(s.Resolver.ToLinesNode())
	node.AppendNode(s.Client.toLinesNode())
	node.AppendNode(s.Logger.toLinesNode())
	node.AppendNode(s.Shoutrrr.ToLinesNode())
	return node
}
