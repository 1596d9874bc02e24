package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Client struct {
	Timeout time.Duration
}

func (c *Client) setDefaults() {
	const defaultTimeout = 3 * time.Second
	c.Timeout = gosettings.DefaultComparable(c.Timeout, defaultTimeout)
}

var ErrClientTimeoutTooLow = errors.New("HTTP client timeout is too low")

func (c Client) Validate() (err error) {
	const minTimeout = 100 * time.Millisecond
	if c.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrClientTimeoutTooLow, c.Timeout, minTimeout)
	}
	return nil
}

func (c Client) String() string {
	return c.toLinesNode().String()
}

func (c Client) toLinesNode() *gotree.Node {
	node := gotree.New("HTTP client")
	node.Appendf("Timeout: %s", c.Timeout)
	return node
}

func (c *Client) read(reader *reader.Reader) (err error) {
	c.Timeout, err = reader.Duration("HTTP_TIMEOUT")
	return err
}
