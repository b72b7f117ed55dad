package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name plus raw component sections keyed by
// component name. Each section is decoded by the builder registered for it.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// FootprintComponentSpec sizes the bounding box. Zero width or height means
// one grid cell.
type FootprintComponentSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Hidden bool   `yaml:"hidden"`
	Label  string `yaml:"label"`
}

type CollidableComponentSpec struct {
	Static bool `yaml:"static"`
}

type CollisionDetectorComponentSpec struct {
	Faction string `yaml:"faction"`
}

type MoverComponentSpec struct {
	Speed int `yaml:"speed"`
}

type HealthComponentSpec struct {
	Max        int `yaml:"max"`
	StunFrames int `yaml:"stun_frames"`
}

type CombatComponentSpec struct {
	StrikeCooldownMS int `yaml:"strike_cooldown_ms"`
	AttackFrames     int `yaml:"attack_frames"`
}

type DamageDealerComponentSpec struct {
	Faction string `yaml:"faction"`
	Damage  int    `yaml:"damage"`
	Stun    bool   `yaml:"stun"`
}

type WeaponComponentSpec struct {
	Reach int `yaml:"reach"`
}

// ArmedComponentSpec names the weapon prefab spawned alongside an actor.
type ArmedComponentSpec struct {
	Prefab string `yaml:"prefab"`
}

type SpriteAnimationComponentSpec struct {
	RunFirst  int `yaml:"run_first"`
	RunLast   int `yaml:"run_last"`
	StunFirst int `yaml:"stun_first"`
	StunLast  int `yaml:"stun_last"`
}

type IntentScriptComponentSpec struct {
	Path string `yaml:"path"`
}
