package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type PursuerTag struct{}

var PursuerTagComponent = NewComponent[PursuerTag]()

type WandererTag struct{}

var WandererTagComponent = NewComponent[WandererTag]()

type TerrainTag struct{}

var TerrainTagComponent = NewComponent[TerrainTag]()
