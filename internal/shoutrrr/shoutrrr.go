// Package shoutrrr sends notifications to the services configured
// with Shoutrrr addresses.
package shoutrrr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	logger        Erroer
}

// New creates a notification client. With no address,
// the client sends nothing.
func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()

	addresses := make([]string, len(settings.Addresses))
	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		addresses[i], err = addDefaultTitle(address, settings.DefaultTitle)
		if err != nil {
			return nil, fmt.Errorf("address %d of %d: %w", i+1, len(addresses), err)
		}
		serviceNames[i] = strings.Split(address, ":")[0]
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		logger:        settings.Logger,
	}, nil
}

func (c *Client) Notify(message string) {
	errs := c.serviceRouter.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

func addDefaultTitle(address, defaultTitle string) (updatedAddress string, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("parsing address as url: %w", err)
	}

	urlValues := u.Query()
	if urlValues.Has("title") {
		return address, nil
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String(), nil
}
