// Package shoutrrr sends one line notifications about update results
// to the configured notification services.
package shoutrrr

import (
	"fmt"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
	"github.com/containrrr/shoutrrr/pkg/types"
)

type Client struct {
	serviceRouter *router.ServiceRouter
	defaultTitle  string
	logger        Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	serviceRouter, err := shoutrrr.CreateSender(settings.Addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		serviceRouter: serviceRouter,
		defaultTitle:  settings.DefaultTitle,
		logger:        settings.Logger,
	}, nil
}

func (c *Client) Notify(message string) {
	params := types.Params{"title": c.defaultTitle}
	errs := c.serviceRouter.Send(message, &params)
	for _, err := range errs {
		if err != nil {
			c.logger.Error("sending notification: " + err.Error())
		}
	}
}
