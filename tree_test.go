package huffman

import (
	"strings"
	"testing"
)

func makeTestTable() FrequencyTable {
	return FrequencyTable{'a': 5, 'b': 2, 'c': 1, 'd': 1, 'r': 2, EndMarker: 1}
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree(makeTestTable())
	defer tree.Release()

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLen() = 11\n",
		"\tNumLeaves() = 6\n",
		"\tRoot() = #10\n",
		"\t#0 = leaf 'a' weight 5\n",
		"\t#1 = leaf 'b' weight 2\n",
		"\t#2 = leaf 'c' weight 1\n",
		"\t#3 = leaf 'd' weight 1\n",
		"\t#4 = leaf 'r' weight 2\n",
		"\t#5 = leaf EOF weight 1\n",
		"\t#6 = node #2 #3 weight 2\n",
		"\t#7 = node #5 #1 weight 3\n",
		"\t#8 = node #4 #6 weight 4\n",
		"\t#9 = node #7 #8 weight 7\n",
		"\t#10 = node #0 #9 weight 12\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	root := tree.Root()
	if tree.IsLeaf(root) {
		t.Fatalf("root is a leaf")
	}
	if w := tree.Weight(root); w != 12 {
		t.Errorf("expected root weight 12, got %d", w)
	}
	if s := tree.Symbol(root); s != InvalidSymbol {
		t.Errorf("expected internal node to carry InvalidSymbol, got %v", s)
	}
}

func TestBuildTree_Structure(t *testing.T) {
	tree := BuildTree(makeTestTable())
	defer tree.Release()

	var leaves int
	for id := NodeID(0); id < NodeID(tree.Len()); id++ {
		zero, one := tree.Child(id, false), tree.Child(id, true)
		if tree.IsLeaf(id) {
			leaves++
			if !tree.Symbol(id).IsValid() {
				t.Errorf("leaf #%d has invalid symbol %v", id, tree.Symbol(id))
			}
			continue
		}
		if zero == NoNode || one == NoNode {
			t.Errorf("internal node #%d has only one child", id)
			continue
		}
		if sum := tree.Weight(zero) + tree.Weight(one); sum != tree.Weight(id) {
			t.Errorf("node #%d: weight %d != %d + %d", id, tree.Weight(id), tree.Weight(zero), tree.Weight(one))
		}
	}
	if leaves != tree.NumLeaves() {
		t.Errorf("counted %d leaves, NumLeaves() = %d", leaves, tree.NumLeaves())
	}
}

func TestBuildTree_SingleLeaf(t *testing.T) {
	tree := BuildTree(FrequencyTable{EndMarker: 1})
	defer tree.Release()

	root := tree.Root()
	if !tree.IsLeaf(root) {
		t.Fatalf("expected the root to be a leaf")
	}
	if s := tree.Symbol(root); s != EndMarker {
		t.Errorf("expected %v, got %v", EndMarker, s)
	}
	if tree.Len() != 1 {
		t.Errorf("expected 1 node, got %d", tree.Len())
	}
}

func TestBuildTree_SaturatingWeights(t *testing.T) {
	tree := BuildTree(FrequencyTable{'x': ^uint64(0), 'y': ^uint64(0), EndMarker: 1})
	defer tree.Release()

	if w := tree.Weight(tree.Root()); w != ^uint64(0) {
		t.Errorf("expected saturated root weight, got %d", w)
	}
}

func TestTree_Release(t *testing.T) {
	tree := BuildTree(makeTestTable())
	tree.Release()
	tree.Release()

	if tree.Len() != 0 {
		t.Errorf("expected no nodes after Release, got %d", tree.Len())
	}
	expectPanic(t, "Root after Release", func() { tree.Root() })
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", name)
		}
	}()
	fn()
}
