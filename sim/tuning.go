package sim

const (
	RingNodes        = 40
	RingCenterX      = 150.0
	RingCenterY      = 150.0
	RingRadius       = 89.0
	LinkRestLength   = 1.0 // pulled taut, the area force holds the ring open
	ExtensionStiff   = 0.3
	CompressionStiff = 0.3
	MinSeparation    = 6.0 // compression never aims closer than this
	VelocityCoupling = 0.4 // share of the neighbour velocity difference
	TargetArea       = 25000.0
	AreaGain         = 0.001
	GravityY         = 0.2
	Damping          = 0.99 // per frame, split evenly across substeps
	Substeps         = 10
	ContactRadius    = 14.0
	ReflectAngle     = 0.1 // radians
	ReflectFactor    = -0.5
	DragGain         = 20.0
	DragCap          = 10.0 // pointer delta length cap
	DragFalloff      = 80.0 // distance floor for the 1/d falloff
	WorldWidth       = 3400.0
	WorldHeight      = 2300.0
	WallOverhang     = 500.0 // walls reach past the world edges
)
