package builder

// Method names prefix constructor errors.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodConnect           = "Connect"
	MethodRandomEmbedding   = "RandomEmbedding"
	MethodStructural        = "StructuralEmbedding"
)

// Minimum sizes per topology.
const (
	// MinPathNodes: a single node is a valid (edgeless) path.
	MinPathNodes = 1
	// MinCycleNodes: fewer nodes would need a loop or a multi-edge.
	MinCycleNodes = 3
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single node.
	MinCompleteNodes = 1
	// MinGridDim is the smallest rows/cols value.
	MinGridDim = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
