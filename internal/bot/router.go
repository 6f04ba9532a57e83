// Package bot routes decoded webhook events: command replies for
// "hello" and "help", translation fan-out for everything else, and
// greetings on join events.
package bot

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/thiha-ko/linetrans/internal/detect"
	"github.com/thiha-ko/linetrans/internal/line"
	"github.com/thiha-ko/linetrans/internal/translate"
)

const (
	greetingReply = "👋 Hello! How can I help you today?"
	helpReply     = "Here's what I can do:\n" +
		"1. Say 'hello' to greet me\n" +
		"2. Ask for 'help' to see this menu\n" +
		"3. Type any text and I'll translate it between English, Thai and Myanmar!"
	failureReply = "Sorry, I couldn't translate that right now. Please try again."

	groupGreeting   = "Hello everyone! 👋 I translate messages between English, Thai and Myanmar. Just type something!"
	roomGreeting    = "Hi! 👋 I'm here to translate between English, Thai and Myanmar."
	defaultGreeting = "👋 Thanks for adding me! Type 'help' to see what I can do."

	segmentSeparator = "\n\n"
)

// Router implements line.EventHandler.
type Router struct {
	provider translate.Provider
	replier  line.Replier
	log      *logrus.Logger
}

// NewRouter creates a router that translates with provider and answers
// through replier.
func NewRouter(provider translate.Provider, replier line.Replier, log *logrus.Logger) *Router {
	return &Router{provider: provider, replier: replier, log: log}
}

// HandleMessage classifies a text message as a command or a translation
// request and sends the reply. Reply-send failures are logged and
// swallowed; the webhook still acknowledges the delivery.
func (rt *Router) HandleMessage(ctx context.Context, ev line.Event) error {
	if ev.Message == nil || ev.Message.Type != "text" {
		rt.log.WithField("source", ev.Source.ID()).Debug("ignoring non-text message")
		return nil
	}

	text := ev.Message.Text
	rt.log.WithFields(logrus.Fields{
		"source": ev.Source.ID(),
		"sent":   ev.Time(),
		"text":   text,
	}).Info("received text message")

	var reply string
	lower := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(lower, "hello"):
		reply = greetingReply
	case strings.HasPrefix(lower, "help"):
		reply = helpReply
	default:
		reply = rt.translateAll(ctx, text)
	}

	rt.send(ctx, ev.ReplyToken, reply)
	return nil
}

// translateAll translates text into both languages other than the
// detected source. Calls run sequentially; a failing target only costs
// its own segment.
func (rt *Router) translateAll(ctx context.Context, text string) string {
	source := detect.Detect(text)
	targets := source.Targets()

	segments := make([]string, 0, len(targets))
	for _, target := range targets {
		translated, err := rt.provider.Translate(ctx, text, source, target)
		if err != nil {
			rt.log.WithError(err).WithFields(logrus.Fields{
				"provider": rt.provider.Name(),
				"source":   source.String(),
				"target":   target.String(),
			}).Warn("translation failed")
			segments = append(segments, target.Flag()+" "+placeholderFor(err))
			continue
		}
		segments = append(segments, target.Flag()+" "+translated)
	}

	if len(segments) == 0 {
		return failureReply
	}
	return strings.Join(segments, segmentSeparator)
}

// placeholderFor maps a translation failure to the per-language text
// that stands in for the missing segment.
func placeholderFor(err error) string {
	switch translate.KindOf(err) {
	case translate.KindTimeout:
		return "(translation timed out)"
	case translate.KindHTTP:
		return "(translation service error)"
	default:
		return "(translation unavailable)"
	}
}

// HandleJoin greets the chat the bot was added to. The greeting depends
// on whether the bot joined a group or a room.
func (rt *Router) HandleJoin(ctx context.Context, ev line.Event) error {
	var greeting string
	switch ev.Source.Type {
	case line.SourceTypeGroup:
		greeting = groupGreeting
	case line.SourceTypeRoom:
		greeting = roomGreeting
	default:
		greeting = defaultGreeting
	}

	rt.log.WithFields(logrus.Fields{
		"source": ev.Source.ID(),
		"kind":   string(ev.Source.Type),
	}).Info("joined chat")

	rt.send(ctx, ev.ReplyToken, greeting)
	return nil
}

// HandleLeave only logs; there is no chat left to reply into.
func (rt *Router) HandleLeave(_ context.Context, ev line.Event) error {
	rt.log.WithFields(logrus.Fields{
		"source": ev.Source.ID(),
		"kind":   string(ev.Source.Type),
	}).Info("removed from chat")
	return nil
}

func (rt *Router) send(ctx context.Context, replyToken, text string) {
	if replyToken == "" {
		rt.log.Debug("no reply token, skipping reply")
		return
	}
	if err := rt.replier.Reply(ctx, replyToken, text); err != nil {
		rt.log.WithError(err).Error("failed to send reply")
	}
}
