// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"fmt"
	"html/template"
	"io"

	"github.com/danielhkuo/contactdesk/models"
)

// Renderer renders the admin HTML pages
type Renderer struct {
	login     *template.Template
	dashboard *template.Template
}

func New() (*Renderer, error) {
	login, err := template.New("login").Parse(loginTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse login template: %w", err)
	}

	dashboard, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	return &Renderer{login: login, dashboard: dashboard}, nil
}

// Login renders the login form. errMsg is shown above the form when set.
func (r *Renderer) Login(w io.Writer, errMsg string) error {
	return r.login.Execute(w, struct{ Error string }{Error: errMsg})
}

// Dashboard renders the submission list, newest-first as given
func (r *Renderer) Dashboard(w io.Writer, username string, subs []models.Submission) error {
	return r.dashboard.Execute(w, struct {
		Username    string
		Submissions []models.Submission
	}{Username: username, Submissions: subs})
}

const loginTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Admin Login</title>
</head>
<body>
	<h1>Admin Login</h1>
	{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
	<form method="post" action="/login">
		<label>Username <input type="text" name="username" required></label>
		<label>Password <input type="password" name="password" required></label>
		<button type="submit">Log in</button>
	</form>
</body>
</html>
`

const dashboardTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Dashboard</title>
</head>
<body>
	<h1>Submissions</h1>
	<p>Logged in as {{.Username}} · <a href="/logout">Log out</a></p>
	{{if .Submissions}}
	<table>
		<tr><th>ID</th><th>Name</th><th>Email</th><th>Message</th><th>Received</th><th></th></tr>
		{{range .Submissions}}
		<tr>
			<td>{{.ID}}</td>
			<td>{{.Name}}</td>
			<td>{{.Email}}</td>
			<td>{{.Message}}</td>
			<td>{{.CreatedAt.Format "2006-01-02 15:04"}}</td>
			<td>
				<form method="post" action="/delete/{{.ID}}">
					<button type="submit">Delete</button>
				</form>
			</td>
		</tr>
		{{end}}
	</table>
	{{else}}
	<p>No submissions yet.</p>
	{{end}}
</body>
</html>
`
