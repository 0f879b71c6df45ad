package mailbox

import (
	"io"

	"remotesync/internal/lib"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

// Inbound is one unread reply pulled from the inbox.
type Inbound struct {
	From string
	To   string
	Text string
}

// Client drains unread messages from an IMAP inbox. A fresh connection is
// dialed per poll; the sweep runs hourly so pooling is not worth it.
type Client struct {
	addr     string
	username string
	password string
}

func New(addr, username, password string) *Client {
	return &Client{
		addr:     addr,
		username: username,
		password: password,
	}
}

func (c *Client) FetchUnseen() ([]Inbound, error) {
	const op = "mailbox.FetchUnseen"

	conn, err := client.DialTLS(c.addr, nil)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	defer conn.Logout()

	if err := conn.Login(c.username, c.password); err != nil {
		return nil, lib.Err(op, err)
	}

	if _, err := conn.Select("INBOX", false); err != nil {
		return nil, lib.Err(op, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}

	ids, err := conn.Search(criteria)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	if len(ids) == 0 {
		return []Inbound{}, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{
		BodyPartName: imap.BodyPartName{Specifier: imap.TextSpecifier},
		Peek:         true,
	}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	messages := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- conn.Fetch(seqset, items, messages)
	}()

	var inbound []Inbound
	for msg := range messages {
		var in Inbound

		if msg.Envelope != nil {
			if len(msg.Envelope.From) > 0 {
				in.From = msg.Envelope.From[0].Address()
			}
			if len(msg.Envelope.To) > 0 {
				in.To = msg.Envelope.To[0].Address()
			}
		}

		if r := msg.GetBody(section); r != nil {
			body, err := io.ReadAll(r)
			if err == nil {
				in.Text = string(body)
			}
		}

		inbound = append(inbound, in)
	}

	if err := <-done; err != nil {
		return nil, lib.Err(op, err)
	}

	// mark the drained batch as seen so the next poll skips it
	markSeen := imap.FormatFlagsOp(imap.AddFlags, true)
	if err := conn.Store(seqset, markSeen, []interface{}{imap.SeenFlag}, nil); err != nil {
		return nil, lib.Err(op, err)
	}

	return inbound, nil
}
