package ballou

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/oggyb/ballou-sms/internal/notify"
)

const rootElement = "ballou_smls_response"

// document accepts the answer either rooted at ballou_smls_response or
// wrapped in one more element.
type document struct {
	XMLName  xml.Name
	Envelope *envelope     `xml:"ballou_smls_response"`
	Response *responseNode `xml:"response"`
}

type envelope struct {
	Response *responseNode `xml:"response"`
}

type responseNode struct {
	Message *messageNode `xml:"message"`
}

type messageNode struct {
	ID     string   `xml:"id,attr"`
	Status string   `xml:"status,attr"`
	Errors []string `xml:"error"`
}

// Reply is the message node of a decoded provider answer.
type Reply struct {
	ID     string
	Status string
	Errors []string
}

// Accepted reports whether the provider took the message. A missing status,
// an empty one and "0" all mean rejected.
func (r *Reply) Accepted() bool {
	s := strings.TrimSpace(r.Status)
	return s != "" && s != "0"
}

// ErrorText joins the provider errors with ", ".
func (r *Reply) ErrorText() string {
	errs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, strings.TrimSpace(e))
	}
	return strings.Join(errs, ", ")
}

// decodeReply reads exactly one XML document. Declared encodings other than
// UTF-8 (ISO-8859-1 and friends) are transcoded.
func decodeReply(body []byte) (*Reply, error) {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.CharsetReader = charset.NewReaderLabel

	var doc document
	if err := d.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", notify.ErrMalformedResponse, err)
	}

	if err := expectEOF(d); err != nil {
		return nil, fmt.Errorf("%w: %v", notify.ErrMalformedResponse, err)
	}

	resp := doc.Response
	if doc.XMLName.Local != rootElement {
		resp = nil
		if doc.Envelope != nil {
			resp = doc.Envelope.Response
		}
	}

	if resp == nil || resp.Message == nil {
		return nil, fmt.Errorf("%w: no response/message node under <%s>", notify.ErrMalformedResponse, doc.XMLName.Local)
	}

	return &Reply{
		ID:     resp.Message.ID,
		Status: resp.Message.Status,
		Errors: resp.Message.Errors,
	}, nil
}

// expectEOF allows only whitespace, comments and processing instructions
// after the root element.
func expectEOF(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("unexpected text %q after root element", string(t))
			}
		case xml.Comment, xml.ProcInst:
		default:
			return fmt.Errorf("unexpected %T after root element", tok)
		}
	}
}
