package relay

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mailersend/mailersend-go"
	"github.com/villamar/stay-enquiries/internal/domain"
)

// MailerSendRelay delivers enquiries straight to the bookings inbox as an
// email with the staged documents attached, bypassing the hosted relay.
type MailerSendRelay struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	inbox   string
	subject string
	enabled bool
}

func NewMailerSendRelay(apiKey, fromName, fromEmail, inbox, subject string) *MailerSendRelay {
	m := &MailerSendRelay{
		enabled: apiKey != "" && inbox != "",
		inbox:   inbox,
		subject: subject,
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendRelay) Deliver(ctx context.Context, form *domain.ReservationForm) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend relay not configured")
	}
	if err := guard(form); err != nil {
		return err
	}

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: m.inbox}})
	msg.SetSubject(m.subject)
	msg.SetReplyTo(mailersend.ReplyTo{Name: form.Contact.FullName, Email: form.Contact.Email})
	msg.SetText(textSummary(form))
	msg.SetHTML(htmlSummary(form))

	for _, slot := range form.Slots {
		if slot.Document == nil {
			continue
		}
		msg.AddAttachment(mailersend.Attachment{
			Filename: fmt.Sprintf("document_guest_%d_%s", slot.Index+1, slot.Document.Name),
			Content:  base64.StdEncoding.EncodeToString(slot.Document.Data),
		})
	}

	_, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	return nil
}

func textSummary(form *domain.ReservationForm) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New booking enquiry\n\n")
	if form.Context.PropertyName != "" {
		fmt.Fprintf(&b, "Property: %s\n", form.Context.PropertyName)
	}
	if form.Context.Dates != nil {
		fmt.Fprintf(&b, "Check-in: %s\nCheck-out: %s\n",
			form.Context.Dates.CheckIn.Format(dateLayout),
			form.Context.Dates.CheckOut.Format(dateLayout))
	}
	fmt.Fprintf(&b, "Adults: %d, Children: %d\n\n", form.Context.Party.Adults, form.Context.Party.Children)
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s %s\n",
		form.Contact.FullName, form.Contact.Email, form.Contact.DialCode, form.Contact.Phone)
	if form.Contact.Nationality != "" {
		fmt.Fprintf(&b, "Nationality: %s\n", form.Contact.Nationality)
	}
	fmt.Fprintf(&b, "Payment: %s\n", form.Payment)

	for _, slot := range form.AdditionalSlots() {
		fmt.Fprintf(&b, "Guest %d: %s", slot.Index+1, slot.FullName)
		if slot.Phone != "" {
			fmt.Fprintf(&b, " (%s)", slot.Phone)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func htmlSummary(form *domain.ReservationForm) string {
	var rows strings.Builder

	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&rows, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", label, value)
		}
	}

	row("Property", form.Context.PropertyName)
	if form.Context.Dates != nil {
		row("Check-in", form.Context.Dates.CheckIn.Format(dateLayout))
		row("Check-out", form.Context.Dates.CheckOut.Format(dateLayout))
	}
	row("Adults", fmt.Sprintf("%d", form.Context.Party.Adults))
	row("Children", fmt.Sprintf("%d", form.Context.Party.Children))
	row("Name", form.Contact.FullName)
	row("Email", form.Contact.Email)
	row("Phone", strings.TrimSpace(form.Contact.DialCode+" "+form.Contact.Phone))
	row("Nationality", form.Contact.Nationality)
	row("Payment", string(form.Payment))
	for _, slot := range form.AdditionalSlots() {
		row(fmt.Sprintf("Guest %d", slot.Index+1), slot.FullName)
	}

	return fmt.Sprintf("<h2>New booking enquiry</h2><table>%s</table>", rows.String())
}
