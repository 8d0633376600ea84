// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/danielhkuo/southwest-video/models"
)

// leadEmailTemplate renders the new-lead notification. html/template
// entity-escapes every interpolated field, so user-supplied text can never
// inject markup into the message.
var leadEmailTemplate = template.Must(template.New("lead").Parse(`<html>
	<head>
		<style>
			body { font-family: sans-serif; line-height: 1.6; color: #333; }
			.container { padding: 20px; border: 1px solid #eee; border-radius: 8px; max-width: 600px; margin: 20px auto; }
			.header { background-color: #4f46e5; color: white; padding: 15px; border-radius: 8px 8px 0 0; text-align: center; }
			.detail { margin-bottom: 15px; padding: 10px; border-bottom: 1px dotted #ccc; }
			.detail strong { display: inline-block; width: 150px; font-weight: 700; color: #1e40af; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h2>NEW LEAD: Southwest Videography Inquiry</h2>
			</div>
			<p>You have received a new project brief from your website contact form.</p>

			<div class="detail">
				<strong>Name:</strong> {{.Name}}
			</div>
			<div class="detail">
				<strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a>
			</div>
			<div class="detail">
				<strong>Project Type:</strong> {{.ProjectType}}
			</div>
			<div class="detail">
				<strong>Budget Range:</strong> {{.ProjectBudget}}
			</div>
			<div class="detail">
				<strong>Vision/Brief:</strong>
				<p style="white-space: pre-wrap; margin-top: 5px; padding: 10px; background: #f9f9f9; border-left: 3px solid #4f46e5;">{{.Vision}}</p>
			</div>

			<p style="text-align: center; margin-top: 30px;">
				<a href="mailto:{{.Email}}" style="display: inline-block; padding: 10px 20px; background-color: #4f46e5; color: white; text-decoration: none; border-radius: 5px;">
					Reply to {{.Name}} Now
				</a>
			</p>
		</div>
	</body>
</html>`))

// LeadEmail builds the notification message for a validated, non-bot
// submission. ReplyTo is the submitter so the recipient can answer directly.
func LeadEmail(sub models.Submission, from, to string) (Message, error) {
	var body strings.Builder
	if err := leadEmailTemplate.Execute(&body, sub); err != nil {
		return Message{}, fmt.Errorf("failed to render lead email: %w", err)
	}

	return Message{
		From:    from,
		To:      to,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New Southwest Project Inquiry from %s", sub.Name),
		HTML:    body.String(),
	}, nil
}
