package relay

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/villamar/stay-enquiries/internal/domain"
)

const dateLayout = "02 Jan 2006"

// Options carries the static relay-control fields attached to every
// submission.
type Options struct {
	Subject  string
	Template string
	ReplyTo  string
}

// flatFields is the non-file portion of the relay payload. Control fields
// use the relay's underscore convention (suppress captcha, pick a response
// template, set the reply-to address).
type flatFields struct {
	Subject     string `url:"_subject"`
	Captcha     string `url:"_captcha"`
	Template    string `url:"_template,omitempty"`
	ReplyTo     string `url:"_replyto,omitempty"`
	Property    string `url:"property,omitempty"`
	PropertyID  string `url:"property_id,omitempty"`
	CheckIn     string `url:"check_in,omitempty"`
	CheckOut    string `url:"check_out,omitempty"`
	Adults      int    `url:"adults"`
	Children    int    `url:"children"`
	Name        string `url:"name"`
	Email       string `url:"email"`
	DialCode    string `url:"dial_code,omitempty"`
	Phone       string `url:"phone"`
	Nationality string `url:"nationality,omitempty"`
	Payment     string `url:"payment"`
}

// encode serializes the form and its staged documents into one multipart
// body. Document parts are named document_guest_<n> with n starting at 1
// for the main guest.
func encode(form *domain.ReservationForm, opts Options) (*bytes.Buffer, string, error) {
	flat := flatFields{
		Subject:     opts.Subject,
		Captcha:     "false",
		Template:    opts.Template,
		ReplyTo:     opts.ReplyTo,
		Property:    form.Context.PropertyName,
		Adults:      form.Context.Party.Adults,
		Children:    form.Context.Party.Children,
		Name:        form.Contact.FullName,
		Email:       form.Contact.Email,
		DialCode:    form.Contact.DialCode,
		Phone:       form.Contact.Phone,
		Nationality: form.Contact.Nationality,
		Payment:     string(form.Payment),
	}
	if form.Context.PropertyID != nil {
		flat.PropertyID = fmt.Sprintf("%d", *form.Context.PropertyID)
	}
	if form.Context.Dates != nil {
		flat.CheckIn = form.Context.Dates.CheckIn.Format(dateLayout)
		flat.CheckOut = form.Context.Dates.CheckOut.Format(dateLayout)
	}

	values, err := query.Values(flat)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode relay fields: %w", err)
	}

	for _, slot := range form.AdditionalSlots() {
		n := slot.Index + 1
		values.Set(fmt.Sprintf("guest_%d_name", n), slot.FullName)
		if strings.TrimSpace(slot.Phone) != "" {
			values.Set(fmt.Sprintf("guest_%d_phone", n), slot.Phone)
		}
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, key := range sortedKeys(values) {
		for _, v := range values[key] {
			if err := w.WriteField(key, v); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
			}
		}
	}

	for _, slot := range form.Slots {
		if slot.Document == nil {
			continue
		}
		part, err := documentPart(w, slot.Index+1, slot.Document)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(slot.Document.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write document for guest %d: %w", slot.Index+1, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return body, w.FormDataContentType(), nil
}

func documentPart(w *multipart.Writer, n int, ref *domain.DocumentRef) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="document_guest_%d"; filename="%s"`, n, escapeQuotes(ref.Name)))
	header.Set("Content-Type", ref.ContentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create document part for guest %d: %w", n, err)
	}
	return part, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func sortedKeys(values url.Values) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
