package discord

import (
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const sessionTTL = 10 * time.Minute

// paginator tracks the page state of every interactive embed message. State
// is keyed by a session id baked into the button custom ids, and expires
// after sessionTTL.
type paginator struct {
	mu       sync.Mutex
	sessions map[string]*pageSession
	done     chan struct{}
	once     sync.Once
}

type pageSession struct {
	pages     []*discordgo.MessageEmbed
	index     int
	createdAt time.Time
}

func newPaginator() *paginator {
	p := &paginator{
		sessions: make(map[string]*pageSession),
		done:     make(chan struct{}),
	}
	go p.sweep()
	return p
}

func (p *paginator) stop() {
	p.once.Do(func() { close(p.done) })
}

func (p *paginator) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.mu.Lock()
			for id, session := range p.sessions {
				if time.Since(session.createdAt) > sessionTTL {
					delete(p.sessions, id)
				}
			}
			p.mu.Unlock()
		}
	}
}

// start registers a new session and returns the first page plus its
// navigation buttons. Single-page sequences get no buttons.
func (p *paginator) start(pages []*discordgo.MessageEmbed) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	if len(pages) == 0 {
		return nil, nil
	}
	if len(pages) == 1 {
		return pages[0], nil
	}

	id := uuid.New().String()
	p.mu.Lock()
	p.sessions[id] = &pageSession{pages: pages, createdAt: time.Now()}
	p.mu.Unlock()

	return pages[0], navButtons(id)
}

// turn advances a session and returns the embed to show. ok is false when
// the session has expired.
func (p *paginator) turn(customID string) (*discordgo.MessageEmbed, []discordgo.MessageComponent, bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != "pg" {
		return nil, nil, false
	}
	id, direction := parts[1], parts[2]

	p.mu.Lock()
	defer p.mu.Unlock()
	session, ok := p.sessions[id]
	if !ok {
		return nil, nil, false
	}

	switch direction {
	case "prev":
		if session.index > 0 {
			session.index--
		}
	case "next":
		if session.index < len(session.pages)-1 {
			session.index++
		}
	default:
		log.Debug("Unknown pagination direction", "customID", customID)
		return nil, nil, false
	}
	return session.pages[session.index], navButtons(id), true
}

func navButtons(id string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "◀",
					Style:    discordgo.SecondaryButton,
					CustomID: "pg:" + id + ":prev",
				},
				discordgo.Button{
					Label:    "▶",
					Style:    discordgo.SecondaryButton,
					CustomID: "pg:" + id + ":next",
				},
			},
		},
	}
}
