package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	anns := Annotations{
		{Index: 1, Kind: "attitude", Properties: Properties{"id": Scalar("a1"), "target-link": Scalar("t1")}},
		{Index: 2, Kind: "targetFrame", Properties: Properties{"id": Scalar("f1"), "newETarget-link": List("e2", "missing", "e1")}},
		{Index: 3, Kind: "eTarget", Properties: Properties{"id": Scalar("e1")}},
		{Index: 4, Kind: "eTarget", Properties: Properties{"id": Scalar("e2")}},
		{Index: 5, Kind: "target", Properties: Properties{"id": Scalar("t1")}},
		{Index: 6, Kind: "odd", Properties: Properties{"id": List("x", "y")}},
	}

	got := anns.Resolve(anns[0], PropTargetLink)
	if assert.Len(t, got, 1) {
		assert.Equal(t, 5, got[0].Index)
	}

	got = anns.Resolve(anns[1], PropNewETarget)
	if assert.Len(t, got, 2) {
		assert.Equal(t, 4, got[0].Index, "link order is kept")
		assert.Equal(t, 3, got[1].Index)
	}

	assert.Empty(t, anns.Resolve(anns[0], PropTargetFrame), "absent link property")
	assert.Empty(t, anns.Resolve(Annotation{Properties: Properties{"target-link": Scalar("nope")}}, PropTargetLink))

	_, ok := anns.Find("x")
	assert.False(t, ok, "list valued ids never match")
}
