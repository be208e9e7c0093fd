package schema

import (
	"context"

	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"

	"paralympics-api-go/pkg/model"
)

var (
	regionSchema      = buildRegionSchema(false)
	regionPatchSchema = buildRegionSchema(true)
)

// buildRegionSchema declares the wire schema for a region. The patch
// variant keeps the same fields but requires none of them.
func buildRegionSchema(partial bool) goskema.Schema[map[string]any] {
	b := g.Object().
		Field("NOC", g.StringOf[string]()).
		Field("region", g.StringOf[string]()).
		Field("notes", g.StringOf[string]().Nullable()).
		UnknownStrict()
	if !partial {
		b = b.Require("NOC", "region")
	}
	return b.MustBuild()
}

// DecodeRegion validates a full creation payload and returns the region
func DecodeRegion(ctx context.Context, raw []byte) (*model.Region, error) {
	m, err := goskema.ParseFrom(ctx, regionSchema, goskema.JSONBytes(raw))
	if err != nil {
		return nil, fromIssues(err)
	}
	region := &model.Region{
		NOC:    m["NOC"].(string),
		Region: m["region"].(string),
		Notes:  optString(m["notes"]),
	}
	return region, nil
}

// DecodeRegionPatch validates a partial payload and applies only the fields
// present in the input onto target. An omitted field is left unchanged, an
// explicit null clears it. The NOC key is accepted but never applied: the
// primary key is immutable.
func DecodeRegionPatch(ctx context.Context, raw []byte, target *model.Region) error {
	dm, err := goskema.ParseFromWithMeta(ctx, regionPatchSchema, goskema.JSONBytes(raw))
	if err != nil {
		return fromIssues(err)
	}
	if seen(dm.Presence, "/region") {
		target.Region = dm.Value["region"].(string)
	}
	if seen(dm.Presence, "/notes") {
		target.Notes = optString(dm.Value["notes"])
	}
	return nil
}
