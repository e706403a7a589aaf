package ssa

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Packet is a group of event lines visible together during [Start, End).
// Text is in Matroska block layout, one line per event, and can be passed to
// Context.ParsePacket.
type Packet struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Serialize cuts events into packets with non-overlapping time ranges. Every
// packet lists all events visible during its range in script order. Ranges
// where nothing is visible produce no packet, events which do not end after
// they start are ignored.
func Serialize(events []Row) []Packet {
	type timed struct {
		start, end time.Duration
		line       string
	}

	var (
		lines  []timed
		bounds []time.Duration
	)
	for i, row := range events {
		t := timed{
			start: ParseTimestamp(row.Get("Start")),
			end:   ParseTimestamp(row.Get("End")),
		}
		if t.end <= t.start {
			continue
		}
		t.line = packetLine(i, row)
		lines = append(lines, t)
		bounds = append(bounds, t.start, t.end)
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	var packets []Packet
	for i := 1; i < len(bounds); i++ {
		from, to := bounds[i-1], bounds[i]

		var sb strings.Builder
		for _, t := range lines {
			if t.start <= from && t.end >= to {
				sb.WriteString(t.line)
				sb.WriteByte('\n')
			}
		}
		if sb.Len() == 0 {
			continue
		}
		packets = append(packets, Packet{Start: from, End: to, Text: sb.String()})
	}
	return packets
}

func packetLine(order int, row Row) string {
	fields := []string{strconv.Itoa(order)}
	for _, name := range packetFormat.Fields()[1:] {
		fields = append(fields, row.Get(name))
	}
	return strings.Join(fields, ",")
}
