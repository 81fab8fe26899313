// Package commands routes chat messages to command handlers grouped into
// reloadable groups.
package commands

import (
	"context"

	"swbox/internal/application"
)

type Logger = application.Logger

// Identity is a chat user as seen by one delivery platform.
type Identity struct {
	Platform string
	ID       string
	Name     string
	Mention  string
}

// Key is the "platform:id" form used in owner lists.
func (i Identity) Key() string {
	return i.Platform + ":" + i.ID
}

type Request struct {
	ID        string
	Author    Identity
	Server    string
	ChannelID string
	Text      string
}

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type Response struct {
	Messages []string
	Files    []Attachment
}

func Text(messages ...string) *Response {
	return &Response{Messages: messages}
}

// Call is what a handler receives for one invocation.
type Call struct {
	Request Request
	Name    string
	Args    []string
	Prefix  string
	Group   *Group
	Logger  Logger
}

type HandlerFunc func(ctx context.Context, call *Call) (*Response, error)

type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	OwnerOnly   bool
	MinArgs     int
	Handler     HandlerFunc
}

func (c *Command) names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

type Group struct {
	Name     string
	Settings Settings
	Commands []*Command
}
