package model

// ActorClass is the classification assigned to an observed actor.
type ActorClass uint8

const (
	ActorUnclassified ActorClass = iota
	ActorPlayer
	ActorBoss
	ActorAdd
)

func (c ActorClass) String() string {
	switch c {
	case ActorPlayer:
		return "player"
	case ActorBoss:
		return "boss"
	case ActorAdd:
		return "add"
	default:
		return "unclassified"
	}
}

// ActorInfo accumulates everything observed about one actor within a
// single encounter scan. Created lazily the first time the name appears
// as attacker or target, mutated additively, classified once at the end.
type ActorInfo struct {
	Name  string
	ID    string
	Job   string
	Role  string
	Class ActorClass

	DamageDealt int64
	DamageTaken int64
	HitCount    int64

	Skills map[string]struct{}
}

func NewActorInfo(name string) *ActorInfo {
	return &ActorInfo{Name: name, Skills: make(map[string]struct{})}
}

func (a *ActorInfo) ObserveSkill(name string) {
	if name == "" {
		return
	}
	if a.Skills == nil {
		a.Skills = make(map[string]struct{})
	}
	a.Skills[name] = struct{}{}
}

// Summary reduces the actor to the minimal record the storage
// collaborator consumes.
func (a *ActorInfo) Summary() ActorSummary {
	return ActorSummary{Name: a.Name, ID: a.ID, Job: a.Job, Role: a.Role}
}
