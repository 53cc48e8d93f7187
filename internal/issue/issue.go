// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ProjectNotFoundId Id = iota + 1
	PythonNotFoundId
	VirtualenvMissingId
	RequirementsNotFoundId
	ConfigLoadFailedId
	ManageCommandFailedId
	PromptUnavailableId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown in the "See also" section
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	projectNotFoundIssue = &Issue{
		id: ProjectNotFoundId,
		mdMsg: `
# No Django project found!

We searched for a manage.py but couldn't find one in the current directory
or any of its parents.

## Things you can try:
- Change into your Django project directory:
~~~
$ cd /path/to/your/project
$ djrun run
~~~

- Or point djrun at the project explicitly:
~~~
$ djrun --project /path/to/your/project run
~~~

- Or start a new project first:
~~~
$ django-admin startproject mysite
~~~`,
		extLinks: []HttpLink{"https://docs.djangoproject.com/en/stable/ref/django-admin/"},
	}

	pythonNotFoundIssue = &Issue{
		id: PythonNotFoundId,
		mdMsg: `
# Python interpreter not found!

No usable Python interpreter was found in the project virtualenv or on PATH.

## Things you can try:
- Bootstrap the project environment:
~~~
$ djrun setup
~~~

- Install Python 3 and make sure it is on your PATH
- Point djrun at a specific interpreter in your config file:
~~~toml
python = "/usr/local/bin/python3.12"
~~~`,
		extLinks: []HttpLink{"https://www.python.org/downloads/"},
	}

	virtualenvMissingIssue = &Issue{
		id: VirtualenvMissingId,
		mdMsg: `
# Virtualenv missing!

The project has no virtualenv yet, so dependencies are not installed.

## Things you can try:
- Create the environment and install dependencies in one step:
~~~
$ djrun setup
~~~

- Or create it manually:
~~~
$ python3 -m venv .venv
$ .venv/bin/pip install -r requirements.txt
~~~`,
	}

	requirementsNotFoundIssue = &Issue{
		id: RequirementsNotFoundId,
		mdMsg: `
# Requirements file not found!

djrun setup installs dependencies from a requirements file, but none was found.

## Things you can try:
- Create a requirements.txt in the project root:
~~~
Django>=4.2
djangorestframework
~~~

- Or point djrun at a different file in your config:
~~~toml
requirements = "requirements/dev.txt"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your djrun config file contains syntax errors or invalid values.

## Things you can try:
- Check the error message above for the offending key
- Show the resolved config file location:
~~~
$ djrun config path
~~~

- Validate the TOML syntax; a minimal config looks like:
~~~toml
python = "python3"
requirements = "requirements.txt"

[server]
addr = "127.0.0.1:8000"
~~~`,
	}

	manageCommandFailedIssue = &Issue{
		id: ManageCommandFailedId,
		mdMsg: `
# Management command failed!

manage.py exited with a non-zero status. djrun does not retry or reinterpret
management command failures; the diagnostics above come straight from Django.

## Common causes:
- Dependencies not installed (run ` + "`djrun setup`" + `)
- Database not reachable or migrations out of date (run ` + "`djrun migrate`" + `)
- Errors in your settings module`,
	}

	promptUnavailableIssue = &Issue{
		id: PromptUnavailableId,
		mdMsg: `
# Interactive prompt unavailable!

This operation needs interactive input but stdin is not a terminal.

## Things you can try:
- Run the command from an interactive terminal
- For createuser, pipe the three values (username, email, password) on stdin:
~~~
$ printf 'alice\nalice@example.com\ns3cret\n' | djrun createuser
~~~`,
	}

	issues = map[Id]*Issue{
		projectNotFoundIssue.Id():      projectNotFoundIssue,
		pythonNotFoundIssue.Id():       pythonNotFoundIssue,
		virtualenvMissingIssue.Id():    virtualenvMissingIssue,
		requirementsNotFoundIssue.Id(): requirementsNotFoundIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		manageCommandFailedIssue.Id():  manageCommandFailedIssue,
		promptUnavailableIssue.Id():    promptUnavailableIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
