package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"chat-mock/domain"
	"chat-mock/observability"
	"chat-mock/roster"
	"chat-mock/services"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// runDemo plays one scripted session against the running pipeline: login,
// an ice breaker sent to a peer, the simulated receipts and reply, a GIF, a
// group message, and a search over what was said.
func runDemo(ctx context.Context, log *slog.Logger, config Config,
	sessions services.ISessionService, chats services.IChatService,
	stats *observability.Stats) {

	sleep := func(d time.Duration) bool {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(d):
			return true
		}
	}

	me, err := sessions.Login(roster.ProfileDraft{
		Name:    "Alice",
		Age:     29,
		Country: "France",
		City:    "Paris",
		Gender:  "Female",
		Bio:     "Here to try the demo",
	})
	if err != nil {
		log.Error("Demo login failed", "error", err)
		return
	}
	color.Green.Printf("\nLogged in as %s (%s)\n\n", me.Name, me.ID)

	printRoster(sessions)

	peer := "user-2"
	opener := chats.IceBreaker(ctx)
	color.Yellow.Printf("\nIce breaker suggestion: %s\n\n", opener)

	if err := chats.SendText(peer, opener); err != nil {
		log.Error("Send failed", "error", err)
		return
	}

	// Let the delivered receipt and the synthetic reply land.
	if !sleep(config.DeliveredDelay + config.ReplyMinDelay + config.ReplyJitter + time.Second) {
		return
	}

	_ = chats.MarkViewed(peer)
	if !sleep(config.SeenDelay + time.Second) {
		return
	}

	printTranscript(chats, me, peer)

	_ = chats.SendGIF(peer, domain.SeedGIFs()[0])
	_ = chats.SendText("group-1", "hello everyone!")
	if !sleep(time.Second) {
		return
	}

	hits, total, err := chats.Search(ctx, "/find interesting")
	if err != nil {
		log.Error("Search failed", "error", err)
	} else {
		color.Cyan.Printf("\nSearch for \"interesting\": %d hit(s)\n", total)
		for _, hit := range hits {
			fmt.Printf("  [%s] %s: %s\n", hit.ChatKey, hit.SenderID, hit.Text)
		}
	}

	printSummaries(chats)

	snapshot := stats.Snapshot()
	color.Magenta.Printf("\nPipeline counters: sent=%d replies=%d delivered=%d seen=%d censored=%d\n",
		snapshot.MessagesSent, snapshot.RepliesInjected,
		snapshot.Delivered, snapshot.Seen, snapshot.Censored)
	fmt.Println("\nPress Ctrl+C to exit.")
}

func printRoster(sessions services.ISessionService) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Age", "City", "Online"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, user := range sessions.Users() {
		online := ""
		if user.IsOnline {
			online = "yes"
		}
		table.Append([]string{user.ID, user.Name, fmt.Sprintf("%d", user.Age), user.City, online})
	}
	for _, group := range sessions.Groups() {
		table.Append([]string{group.ID, group.Name, "-", "-", "-"})
	}
	table.Render()
}

func printTranscript(chats services.IChatService, me domain.User, peer string) {
	messages, key, err := chats.Messages(peer)
	if err != nil {
		return
	}
	color.Cyan.Printf("Conversation %s:\n", key)
	for _, msg := range messages {
		line := fmt.Sprintf("  [%s] %s: %s (%s)",
			msg.Timestamp.Format("15:04:05"), msg.SenderID, msg.Text, msg.Status)
		if msg.SenderID == me.ID {
			color.Green.Println(line)
		} else {
			color.Cyan.Println(line)
		}
	}
}

func printSummaries(chats services.IChatService) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Chat", "Last message", "Total", "Unread"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, summary := range chats.Summaries() {
		last := summary.LastMessage.Text
		if last == "" {
			last = summary.LastMessage.ContentURL
		}
		if len(last) > 40 {
			last = last[:37] + "..."
		}
		table.Append([]string{
			string(summary.ChatKey), last,
			fmt.Sprintf("%d", summary.Total), fmt.Sprintf("%d", summary.Unread),
		})
	}
	fmt.Println()
	table.Render()
}
