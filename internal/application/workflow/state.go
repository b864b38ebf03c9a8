package workflow

// State estado de una instancia de workflow.
type State int

const (
	Idle State = iota
	DialogOpen
	Confirmed
	Mutating
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DialogOpen:
		return "dialog_open"
	case Confirmed:
		return "confirmed"
	case Mutating:
		return "mutating"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Kind gesto CRUD que originó el workflow.
type Kind string

const (
	KindCreate Kind = "create"
	KindView   Kind = "view"
	KindEdit   Kind = "edit"
	KindDelete Kind = "delete"
)

// transitions transiciones válidas: Idle → DialogOpen → {Confirmed → Mutating → Settled, Idle}.
var transitions = map[State][]State{
	Idle:       {DialogOpen},
	DialogOpen: {Confirmed, Idle},
	Confirmed:  {Mutating, Idle},
	Mutating:   {Settled},
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
