// Package chat is the canned support bot. It only picks a reply; it never
// touches progression state.
package chat

import (
	"math/rand"
	"strings"
	"time"
)

type Topic string

const (
	TopicStress  Topic = "stress"
	TopicAnxiety Topic = "anxiety"
	TopicSad     Topic = "sad"
	TopicTired   Topic = "tired"
	TopicDefault Topic = "default"
)

// routes is checked in order; the first topic with a matching keyword wins.
var routes = []struct {
	topic    Topic
	keywords []string
}{
	{TopicStress, []string{"stress", "overwhelm"}},
	{TopicAnxiety, []string{"anxiety", "worried", "nervous"}},
	{TopicSad, []string{"sad", "depressed", "down"}},
	{TopicTired, []string{"tired", "exhausted", "sleep"}},
}

var replies = map[Topic][]string{
	TopicStress: {
		"Stress is common. Try deep breathing: inhale for 4, hold for 4, exhale for 4.",
		"Remember to take breaks. Even a 5-minute walk can help reset your mind.",
		"Journaling your thoughts can help process stress. What's on your mind?",
	},
	TopicAnxiety: {
		"Anxiety can feel overwhelming. Try the 5-4-3-2-1 grounding technique.",
		"You're not alone in this. Many people feel anxious sometimes.",
		"Focus on the present moment. What can you see, hear, or feel right now?",
	},
	TopicSad: {
		"Feeling sad is okay. Be kind to yourself during tough times.",
		"Consider reaching out to a friend or doing something you enjoy.",
		"Small steps matter. What's one thing you can do today to feel a bit better?",
	},
	TopicTired: {
		"Rest is important for mental health. Have you been getting enough sleep?",
		"Try a short nap or relaxation exercise if you're feeling drained.",
		"Listen to your body. Sometimes we need to slow down and recharge.",
	},
	TopicDefault: {
		"I'm here to listen. What's been on your mind lately?",
		"Everyone has challenges. You're taking a positive step by reaching out.",
		"How are you feeling right now? I'm here to support you.",
		"Remember, it's okay to ask for help. You're not alone in this.",
	},
}

// Greeting is the bot's opening line.
const Greeting = "Hi! I'm here to listen. How are you feeling today?"

// Classify returns the topic a message is routed to.
func Classify(msg string) Topic {
	lower := strings.ToLower(msg)
	for _, r := range routes {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.topic
			}
		}
	}
	return TopicDefault
}

// Replies returns the canned lines for a topic.
func Replies(t Topic) []string {
	return append([]string(nil), replies[t]...)
}

type Responder struct {
	rng *rand.Rand
}

func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

func (r *Responder) Reply(msg string) string {
	lines := replies[Classify(msg)]
	return lines[r.rng.Intn(len(lines))]
}

// Delay picks how long the bot "types" before answering, in [lo, hi].
func (r *Responder) Delay(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.rng.Int63n(int64(hi-lo)+1))
}
