package main

import (
	"flag"
	"io"
	"strings"

	"github.com/pure-golang/smtpeter/mail/smtpeter"
)

// listFlag collects repeated and comma-separated values.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

type options struct {
	envFile string
	dryRun  bool

	envelope   string
	from       string
	subject    string
	text       string
	html       string
	to         listFlag
	cc         listFlag
	recipients listFlag

	orcpt  string
	notify listFlag
	ret    string

	inlineCSS    bool
	trackClicks  bool
	trackBounces bool
	trackOpens   bool

	// set holds the names of flags given on the command line.
	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}

	fs := flag.NewFlagSet("smtpeter-send", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.envFile, "env-file", "", "load configuration from this env file instead of ./.env")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print the request body instead of sending it")

	fs.StringVar(&opts.envelope, "envelope", "", "SMTP envelope sender")
	fs.StringVar(&opts.from, "from", "", "From address")
	fs.StringVar(&opts.subject, "subject", "", "subject")
	fs.StringVar(&opts.text, "text", "", "plain text body")
	fs.StringVar(&opts.html, "html", "", "HTML body")
	fs.Var(&opts.to, "to", "To address (repeatable, comma-separated)")
	fs.Var(&opts.cc, "cc", "Cc address (repeatable, comma-separated)")
	fs.Var(&opts.recipients, "recipient", "envelope recipient (repeatable, comma-separated)")

	fs.StringVar(&opts.orcpt, "orcpt", "", "DSN original recipient")
	fs.Var(&opts.notify, "notify", "DSN notify types: NEVER or FAILURE,SUCCESS,DELAY")
	fs.StringVar(&opts.ret, "ret", "", "DSN return: FULL or HDRS")

	fs.BoolVar(&opts.inlineCSS, "inline-css", false, "inline CSS of the HTML body")
	fs.BoolVar(&opts.trackClicks, "track-clicks", false, "track clicks")
	fs.BoolVar(&opts.trackBounces, "track-bounces", false, "track bounces")
	fs.BoolVar(&opts.trackOpens, "track-opens", false, "track opens")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	return opts, nil
}

// email builds the request from the flags that were actually given.
func (o *options) email() *smtpeter.Email {
	e := smtpeter.NewEmail()

	strs := []struct {
		name  string
		value string
		apply func(string) *smtpeter.Email
	}{
		{"envelope", o.envelope, e.SetEnvelope},
		{"from", o.from, e.SetFrom},
		{"subject", o.subject, e.SetSubject},
		{"text", o.text, e.SetText},
		{"html", o.html, e.SetHTML},
		{"orcpt", o.orcpt, e.SetOriginalRecipient},
	}
	for _, s := range strs {
		if o.set[s.name] {
			s.apply(s.value)
		}
	}

	lists := []struct {
		name  string
		value listFlag
		apply func(...string) *smtpeter.Email
	}{
		{"to", o.to, e.SetTo},
		{"cc", o.cc, e.SetCc},
		{"recipient", o.recipients, e.SetRecipients},
	}
	for _, l := range lists {
		if o.set[l.name] {
			l.apply(l.value...)
		}
	}

	if o.set["notify"] {
		types := make([]smtpeter.Notify, len(o.notify))
		for i, n := range o.notify {
			types[i] = smtpeter.Notify(strings.ToUpper(n))
		}
		e.SetNotifications(types...)
	}
	if o.set["ret"] {
		e.SetReturn(smtpeter.Return(strings.ToUpper(o.ret)))
	}

	bools := []struct {
		name  string
		value bool
		apply func(bool) *smtpeter.Email
	}{
		{"inline-css", o.inlineCSS, e.SetInlineCSS},
		{"track-clicks", o.trackClicks, e.SetTrackClicks},
		{"track-bounces", o.trackBounces, e.SetTrackBounces},
		{"track-opens", o.trackOpens, e.SetTrackOpens},
	}
	for _, b := range bools {
		if o.set[b.name] {
			b.apply(b.value)
		}
	}

	return e
}
