package chat

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := map[string]Topic{
		"I'm so STRESSED about exams":        TopicStress,
		"feeling overwhelmed":                TopicStress,
		"a bit nervous today":                TopicAnxiety,
		"just feeling down":                  TopicSad,
		"can't sleep":                        TopicTired,
		"hello there":                        TopicDefault,
		"stressed and tired":                 TopicStress,
		"worried I'm depressed":              TopicAnxiety,
		"":                                   TopicDefault,
		"I have so much anxiety and I'm sad": TopicAnxiety,
	}
	for msg, want := range cases {
		assert.Equal(t, want, Classify(msg), msg)
	}
}

func TestReplyComesFromTopic(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		assert.Contains(t, Replies(TopicTired), r.Reply("so exhausted"))
		assert.Contains(t, Replies(TopicDefault), r.Reply("hi"))
	}
}

func TestReplyDeterministicWithSeed(t *testing.T) {
	a := NewResponder(rand.New(rand.NewSource(42)))
	b := NewResponder(rand.New(rand.NewSource(42)))
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Reply("stress"), b.Reply("stress"))
	}
}

func TestDelayWithinBounds(t *testing.T) {
	r := NewResponder(rand.New(rand.NewSource(1)))
	for i := 0; i < 50; i++ {
		d := r.Delay(time.Second, 2*time.Second)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 2*time.Second)
	}
	assert.Equal(t, time.Second, r.Delay(time.Second, time.Second))
}
