// Package chat runs the interactive line-oriented front: read a line, answer
// with a translation or a command reply. Per-user state lives in the session
// store so the loop itself stays stateless between lines.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/tetraglot/internal/history"
	"codeberg.org/snonux/tetraglot/internal/language"
	"codeberg.org/snonux/tetraglot/internal/parser"
	"codeberg.org/snonux/tetraglot/internal/reply"
	"codeberg.org/snonux/tetraglot/internal/session"
	"codeberg.org/snonux/tetraglot/internal/translator"
)

const defaultHistoryLimit = 10

// Config carries the dependencies of a chat loop. Translator is required;
// everything else has a working default.
type Config struct {
	Translator   *translator.Service
	Sessions     session.Store
	History      *history.History
	Logger       *logrus.Logger
	In           io.Reader
	Out          io.Writer
	HistoryLimit int
	UserID       int64
}

// Loop is one interactive session bound to a single local user.
type Loop struct {
	translator   *translator.Service
	sessions     session.Store
	history      *history.History
	logger       *logrus.Logger
	in           io.Reader
	out          io.Writer
	historyLimit int
	userID       int64
}

// New creates a chat loop, filling in defaults for absent dependencies.
func New(cfg Config) *Loop {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if cfg.Sessions == nil {
		cfg.Sessions = session.NewMemoryStore()
	}
	if cfg.History == nil {
		cfg.History = history.New(true, defaultHistoryLimit)
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return &Loop{
		translator:   cfg.Translator,
		sessions:     cfg.Sessions,
		history:      cfg.History,
		logger:       cfg.Logger,
		in:           cfg.In,
		out:          cfg.Out,
		historyLimit: cfg.HistoryLimit,
		userID:       cfg.UserID,
	}
}

// Run greets the user and answers lines until /quit, EOF, or a canceled
// context.
func (l *Loop) Run(ctx context.Context) error {
	l.say(reply.Welcome)

	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if quit := l.handle(ctx, scanner.Text()); quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// handle answers one input line. It reports true when the user quits.
func (l *Loop) handle(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "/") {
		return l.command(trimmed)
	}
	l.message(ctx, trimmed)
	return false
}

func (l *Loop) command(line string) bool {
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	l.logger.WithFields(logrus.Fields{"user_id": l.userID, "command": name}).Info("command received")

	switch name {
	case "/start":
		l.say(reply.Welcome)
	case "/help":
		l.say(reply.Help)
	case "/lang":
		l.lang(fields[1:])
	case "/history":
		l.showHistory()
	case "/quit", "/exit":
		return true
	default:
		l.say(reply.Help)
	}
	return false
}

// lang shows or updates the active default pair. "/lang" alone reports the
// current setting, "/lang auto" clears it, "/lang de-en" stores a pair.
func (l *Loop) lang(args []string) {
	if len(args) == 0 {
		if pair, ok := l.sessions.ActivePair(l.userID); ok {
			l.say(reply.CurrentPair(pair))
		} else {
			l.say(reply.CurrentAuto())
		}
		l.say(reply.LangUsage)
		return
	}

	arg := strings.ToLower(strings.Join(args, " "))
	if arg == "auto" {
		l.sessions.ClearActivePair(l.userID)
		l.say(reply.AutoModeSaved)
		l.logger.WithFields(logrus.Fields{"user_id": l.userID, "mode": "auto"}).Info("default pair updated")
		return
	}

	src, dst, ok := language.NormalizePair(arg)
	if !ok {
		l.say(reply.InvalidPair)
		return
	}
	pair, ok := language.CanonicalPair(src, dst)
	if !ok {
		l.say(reply.InvalidPair)
		return
	}

	l.sessions.SetActivePair(l.userID, pair)
	l.say(reply.PairSaved(pair))
	l.logger.WithFields(logrus.Fields{"user_id": l.userID, "pair": pair.String()}).Info("default pair updated")
}

func (l *Loop) showHistory() {
	if !l.history.Enabled() {
		l.say(reply.HistoryDisabled)
		return
	}
	records := l.history.Latest(l.userID, l.historyLimit)
	if len(records) == 0 {
		l.say(reply.HistoryEmpty)
		return
	}
	l.say(reply.FormatHistory(records))
}

// message runs one free-text line through the parse and translate pipeline.
// A bare language token answers a pending clarification instead.
func (l *Loop) message(ctx context.Context, text string) {
	if code, ok := language.Normalize(text); ok {
		if pending, exists := l.sessions.TakePendingClarification(l.userID); exists {
			l.clarify(ctx, pending, code)
			return
		}
	}

	var active *language.Pair
	if pair, ok := l.sessions.ActivePair(l.userID); ok {
		active = &pair
	}

	intent, err := parser.Parse(text, active)
	if err != nil {
		l.logger.WithFields(logrus.Fields{
			"user_id":     l.userID,
			"reason":      err.Error(),
			"text_length": len(text),
		}).Info("translation rejected")
		if msg := reply.ForRejection(err); msg != "" {
			l.say(msg)
		}
		return
	}

	l.logger.WithFields(logrus.Fields{
		"user_id":     l.userID,
		"mode":        intent.Mode,
		"text_length": len(intent.Text),
	}).Info("translation accepted")

	result, err := l.translator.Translate(ctx, intent)
	switch {
	case errors.Is(err, translator.ErrUnknownLanguage):
		l.sessions.SetPendingClarification(l.userID, intent.Text)
		l.say(reply.UnknownLanguage)
	case err != nil:
		l.say(reply.TranslationError)
	default:
		l.say(reply.FormatResult(result, intent.Mode))
		l.remember(intent.Text, result)
	}
}

// clarify finishes a translation whose source language the user just named.
func (l *Loop) clarify(ctx context.Context, text, source string) {
	l.logger.WithFields(logrus.Fields{"user_id": l.userID, "source": source}).Info("clarification received")

	result, err := l.translator.TranslateWithForcedSource(ctx, text, source)
	if err != nil {
		l.say(reply.TranslationError)
		return
	}
	l.say(reply.FormatResult(result, parser.ModeAutoAll))
	l.remember(text, result)
}

func (l *Loop) remember(text string, result *translator.Result) {
	if result.SourceLanguage == "" || len(result.Translations) == 0 {
		return
	}
	targets := make([]string, 0, len(result.Translations))
	for _, lang := range language.Supported() {
		if _, ok := result.Translations[lang]; ok {
			targets = append(targets, lang)
		}
	}
	l.history.Add(l.userID, text, result.SourceLanguage, targets)
}

func (l *Loop) say(text string) {
	fmt.Fprintln(l.out, text)
	fmt.Fprintln(l.out)
}
