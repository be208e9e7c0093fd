package schema

import (
	"context"

	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"

	"paralympics-api-go/pkg/model"
)

var (
	eventSchema      = buildEventSchema(false)
	eventPatchSchema = buildEventSchema(true)
)

// buildEventSchema declares the wire schema for an event. The id is
// accepted on input but always store-assigned; the patch variant keeps the
// same fields but requires none of them.
func buildEventSchema(partial bool) goskema.Schema[map[string]any] {
	b := g.Object().
		Field("id", g.IntOf[int]()).
		Field("type", g.StringOf[string]()).
		Field("year", g.IntOf[int]()).
		Field("country", g.StringOf[string]()).
		Field("host", g.StringOf[string]()).
		Field("start", g.StringOf[string]().Nullable()).
		Field("end", g.StringOf[string]().Nullable()).
		Field("duration", g.IntOf[int]().Nullable()).
		Field("countries", g.IntOf[int]().Nullable()).
		Field("events", g.IntOf[int]().Nullable()).
		Field("sports", g.IntOf[int]().Nullable()).
		Field("participants", g.IntOf[int]().Nullable()).
		Field("highlights", g.StringOf[string]().Nullable()).
		UnknownStrict()
	if !partial {
		b = b.Require("type", "year", "country", "host")
	}
	return b.MustBuild()
}

// DecodeEvent validates a full creation payload and returns the event.
// The id field, if present, is ignored; the store assigns it on insert.
func DecodeEvent(ctx context.Context, raw []byte) (*model.Event, error) {
	m, err := goskema.ParseFrom(ctx, eventSchema, goskema.JSONBytes(raw))
	if err != nil {
		return nil, fromIssues(err)
	}
	event := &model.Event{
		Type:         m["type"].(string),
		Year:         m["year"].(int),
		Country:      m["country"].(string),
		Host:         m["host"].(string),
		Start:        optString(m["start"]),
		End:          optString(m["end"]),
		Duration:     optInt(m["duration"]),
		Countries:    optInt(m["countries"]),
		Events:       optInt(m["events"]),
		Sports:       optInt(m["sports"]),
		Participants: optInt(m["participants"]),
		Highlights:   optString(m["highlights"]),
	}
	return event, nil
}

// DecodeEventPatch validates a partial payload and applies only the fields
// present in the input onto target. An omitted field is left unchanged, an
// explicit null clears it. The id key is accepted but never applied: the
// primary key is immutable.
func DecodeEventPatch(ctx context.Context, raw []byte, target *model.Event) error {
	dm, err := goskema.ParseFromWithMeta(ctx, eventPatchSchema, goskema.JSONBytes(raw))
	if err != nil {
		return fromIssues(err)
	}
	if seen(dm.Presence, "/type") {
		target.Type = dm.Value["type"].(string)
	}
	if seen(dm.Presence, "/year") {
		target.Year = dm.Value["year"].(int)
	}
	if seen(dm.Presence, "/country") {
		target.Country = dm.Value["country"].(string)
	}
	if seen(dm.Presence, "/host") {
		target.Host = dm.Value["host"].(string)
	}
	if seen(dm.Presence, "/start") {
		target.Start = optString(dm.Value["start"])
	}
	if seen(dm.Presence, "/end") {
		target.End = optString(dm.Value["end"])
	}
	if seen(dm.Presence, "/duration") {
		target.Duration = optInt(dm.Value["duration"])
	}
	if seen(dm.Presence, "/countries") {
		target.Countries = optInt(dm.Value["countries"])
	}
	if seen(dm.Presence, "/events") {
		target.Events = optInt(dm.Value["events"])
	}
	if seen(dm.Presence, "/sports") {
		target.Sports = optInt(dm.Value["sports"])
	}
	if seen(dm.Presence, "/participants") {
		target.Participants = optInt(dm.Value["participants"])
	}
	if seen(dm.Presence, "/highlights") {
		target.Highlights = optString(dm.Value["highlights"])
	}
	return nil
}
