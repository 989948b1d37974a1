package inference

import "github.com/google/uuid"

// namespace roots every deterministically-derived id this package mints,
// so two independent runs of Infer over the same input always produce the
// same inferred connection/door ids (§8: "running infer twice yields an
// idempotent result").
var namespace = uuid.MustParse("6f2c9a6e-6e8d-4f1a-9b7a-2a7a0f6f6b3e")

func connectionID(levelID, fromID, toID string) string {
	return "inferred-conn-" + uuid.NewSHA1(namespace, []byte(levelID+"|conn|"+fromID+"|"+toID)).String()
}

func doorID(levelID, fromID, toID string) string {
	return "inferred-door-" + uuid.NewSHA1(namespace, []byte(levelID+"|door|"+fromID+"|"+toID)).String()
}
