package graph

import (
	"bytes"
	"cmp"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"

	"socialgraph/model"
)

// Suggest ranks every user that userID does not follow yet.
//
// The score of a candidate is the number of 2-hop paths userID -> f -> c
// where f is already followed. Two intermediaries pointing at the same
// candidate count twice. Users with no such path are still listed with a
// score of zero. Results are sorted by score descending, then by id
// ascending.
func Suggest(src Source, userID bson.ObjectID) []model.Suggestion {
	adj := map[bson.ObjectID][]bson.ObjectID{}
	for _, f := range src.ListFollows() {
		adj[f.FollowerID] = append(adj[f.FollowerID], f.FolloweeID)
	}

	following := Set{}
	for _, id := range adj[userID] {
		following[id] = struct{}{}
	}

	tally := map[bson.ObjectID]int{}
	for f := range following {
		for _, c := range adj[f] {
			if c == userID || following.Has(c) {
				continue
			}
			tally[c]++
		}
	}

	out := []model.Suggestion{}
	for _, u := range src.ListUsers() {
		if u.ID == userID || following.Has(u.ID) {
			continue
		}
		out = append(out, model.Suggestion{User: u, MutualCount: tally[u.ID]})
	}

	slices.SortFunc(out, func(a, b model.Suggestion) int {
		if c := cmp.Compare(b.MutualCount, a.MutualCount); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out
}
