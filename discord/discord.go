package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/uniquetopup/ff_info_bot/logger"
	"github.com/uniquetopup/ff_info_bot/pipeline"
	"github.com/uniquetopup/ff_info_bot/session"
)

var _ Discord = (*DefaultDiscord)(nil)

const commandPrefix = "!"

// DefaultDiscord wires gateway events to the command pipeline: ready
// and disconnect events drive the session lifecycle, message events
// become command invocations.
type DefaultDiscord struct {
	gateway       *discordgo.Session
	listenChannel string
	sessions      *session.Manager
	pipeline      *pipeline.Pipeline
	logger        logger.Logger

	removeHandlers []func()
}

type Params struct {
	Config   Config
	Sessions *session.Manager
	Pipeline *pipeline.Pipeline
	Logger   logger.Logger
}

func New(p Params) (*DefaultDiscord, error) {
	gateway, err := discordgo.New("Bot " + p.Config.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	gateway.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &DefaultDiscord{
		gateway:       gateway,
		listenChannel: p.Config.ListenChannel,
		sessions:      p.Sessions,
		pipeline:      p.Pipeline,
		logger:        log,
	}, nil
}

func (c *DefaultDiscord) Start(ctx context.Context) error {
	// Handlers go in before Open so the first ready event is not missed.
	c.removeHandlers = []func(){
		c.gateway.AddHandler(c.handleReady),
		c.gateway.AddHandler(c.handleDisconnect),
		c.gateway.AddHandler(c.handleMessage),
	}

	if err := c.gateway.Open(); err != nil {
		return fmt.Errorf("open discord connection: %w", err)
	}

	return nil
}

func (c *DefaultDiscord) Stop() error {
	for _, remove := range c.removeHandlers {
		remove()
	}
	c.removeHandlers = nil

	err := c.gateway.Close()
	c.sessions.HandleDisconnect()
	return err
}

func (c *DefaultDiscord) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	c.sessions.HandleReady()
	c.logger.InfoW("logged in", "user", r.User.Username)
}

func (c *DefaultDiscord) handleDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	c.sessions.HandleDisconnect()
	c.logger.WarnW("gateway connection lost")
}

func (c *DefaultDiscord) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if c.listenChannel != "" && m.ChannelID != c.listenChannel {
		return
	}
	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}

	parts := strings.Fields(strings.TrimPrefix(m.Content, commandPrefix))
	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "info":
		outcome := c.pipeline.Handle(context.Background(), m.Author.ID, arg)
		c.deliver(s, m.ChannelID, outcome)
	case "help":
		c.sendText(s, m.ChannelID, helpText())
	}
}

func (c *DefaultDiscord) deliver(s *discordgo.Session, channelID string, outcome pipeline.Outcome) {
	if outcome.Report == nil {
		c.sendText(s, channelID, outcome.Reply)
		return
	}

	embed := &discordgo.MessageEmbed{
		Description: outcome.Report.Text,
		Color:       outcome.Report.Color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: outcome.Report.Footer,
		},
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		c.logger.ErrorW("failed to send report", "channel", channelID, "error", err)
	}
}

func (c *DefaultDiscord) sendText(s *discordgo.Session, channelID, msg string) {
	if msg == "" {
		return
	}
	if _, err := s.ChannelMessageSend(channelID, msg); err != nil {
		c.logger.ErrorW("failed to send reply", "channel", channelID, "error", err)
	}
}

func helpText() string {
	return "**Available Commands:**\n" +
		"```\n" +
		"!info <uid>  - Look up a Free Fire account by UID\n" +
		"!help        - Show this help message\n" +
		"```"
}
