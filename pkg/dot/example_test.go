package dot_test

import (
	"fmt"

	"github.com/cosmicexplorer/graphvizier/pkg/dot"
)

func ExampleGraphBuilder() {
	b := dot.New(dot.PolicyStrict)
	fmt.Print(b.Build(dot.MustID("g")))
	// Output:
	// digraph g {
	//   compound = true;
	// }
}

func ExampleGraphBuilder_Accept() {
	b := dot.New(dot.PolicyStrict)
	b.Accept(dot.Vertex{ID: dot.MustID("app"), Label: "app"})
	b.Accept(dot.Vertex{ID: dot.MustID("lib"), Label: "lib"})
	b.Accept(dot.Edge{Source: dot.MustID("app"), Target: dot.MustID("lib")})

	fmt.Print(b.Build(dot.MustID("deps")))
	// Output:
	// digraph deps {
	//   compound = true;
	//
	//   app[label="app", ];
	//
	//   lib[label="lib", ];
	//
	//   app -> lib;
	// }
}

func ExampleSubgraph() {
	inner := dot.Subgraph{
		ID:    dot.MustID("internal"),
		Label: "internal packages",
		Entities: []dot.Entity{
			dot.Vertex{ID: dot.MustID("core")},
		},
	}

	b := dot.New(dot.PolicyStrict)
	b.Accept(inner)

	fmt.Print(b.Build(dot.MustID("layout")))
	// Output:
	// digraph layout {
	//   compound = true;
	//
	//   subgraph internal {
	//     label = "internal packages";
	//     cluster = true;
	//     rank = same;
	//
	//
	//     core;
	//   }
	// }
}
