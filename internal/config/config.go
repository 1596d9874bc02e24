package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/pd-safelist/internal/resolver"
)

type Config struct {
	Client   Client
	Resolver resolver.Settings
	Docs     Docs
	Webhooks Webhooks
	Output   Output
	Server   Server
	Health   Health
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Resolver.SetDefaults()
	c.Docs.setDefaults()
	c.Webhooks.setDefaults()
	c.Output.setDefaults()
	c.Server.setDefaults()
	c.Health.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := []struct {
		name      string
		validator validator
	}{
		{name: "client", validator: &c.Client},
		{name: "resolver", validator: &c.Resolver},
		{name: "documentation source", validator: &c.Docs},
		{name: "webhook sources", validator: &c.Webhooks},
		{name: "output", validator: &c.Output},
		{name: "server", validator: &c.Server},
		{name: "health", validator: &c.Health},
		{name: "logger", validator: &c.Logger},
		{name: "shoutrrr", validator: &c.Shoutrrr},
	}

	for _, v := range toValidate {
		err = v.validator.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", v.name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Resolver.ToLinesNode())
	node.AppendNode(c.Docs.toLinesNode())
	node.AppendNode(c.Webhooks.toLinesNode())
	node.AppendNode(c.Output.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = readResolver(reader, &c.Resolver)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	c.Docs.read(reader)

	err = c.Webhooks.read(reader)
	if err != nil {
		return fmt.Errorf("reading webhook sources settings: %w", err)
	}

	err = c.Output.read(reader)
	if err != nil {
		return fmt.Errorf("reading output settings: %w", err)
	}

	c.Server.read(reader)
	c.Health.read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
