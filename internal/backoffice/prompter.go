package backoffice

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter is a Confirmer fed by the console's input loop. A pending prompt takes the
// next line read, so actions running in goroutines can ask without owning stdin.
type Prompter struct {
	out     io.Writer
	replies chan chan string
	asked   chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewPrompter(out io.Writer) *Prompter {
	return &Prompter{
		out:     out,
		replies: make(chan chan string, 1),
		asked:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Confirm is true only for an explicit y or yes. A closed console declines.
func (p *Prompter) Confirm(prompt string) bool {
	reply := make(chan string, 1)

	select {
	case p.replies <- reply:
	case <-p.done:
		return false
	}

	fmt.Fprintf(p.out, "%s [y/N] ", prompt)

	select {
	case p.asked <- struct{}{}:
	default:
	}

	select {
	case answer := <-reply:
		answer = strings.ToLower(strings.TrimSpace(answer))

		return answer == "y" || answer == "yes"
	case <-p.done:
		return false
	}
}

// answer hands line to a waiting prompt, if any.
func (p *Prompter) answer(line string) bool {
	select {
	case reply := <-p.replies:
		reply <- line

		return true
	default:
		return false
	}
}

func (p *Prompter) close() {
	p.once.Do(func() { close(p.done) })
}
