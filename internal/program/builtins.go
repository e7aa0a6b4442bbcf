package program

// Builtins returns the programs shipped with tur. Each call returns fresh
// values.
func Builtins() []*Program {
	return []*Program{
		JustStop(),
		LightRight(),
		LightLeft(),
		GoRight(),
		LightTheWorld(),
	}
}

// JustStop halts on its first step without touching the tape.
func JustStop() *Program {
	return &Program{
		Name:        "Just stop",
		Description: "Stops immediately.",
		Cards: []Card{
			{Name: "Terminate", On: Halt(), Off: Halt()},
		},
	}
}

// LightRight switches on every cell to the right of the head, stepping
// back left whenever it finds a lit cell.
func LightRight() *Program {
	return &Program{
		Name:        "Light to the right",
		Description: "Lights cells while walking right.",
		Cards: []Card{
			{
				Name: "Light right",
				On:   Instruction{Move: Move(Left), Next: Goto(0)},
				Off:  Instruction{Write: Write(true), Move: Move(Right), Next: Goto(0)},
			},
		},
	}
}

// LightLeft walks left lighting every dark cell it finds.
func LightLeft() *Program {
	return &Program{
		Name:        "Light to the left",
		Description: "Lights cells while walking left.",
		Cards: []Card{
			{
				Name: "Light left",
				On:   Instruction{Move: Move(Left), Next: Goto(0)},
				Off:  Instruction{Write: Write(true), Move: Move(Left), Next: Goto(0)},
			},
		},
	}
}

// GoRight walks right forever.
func GoRight() *Program {
	return &Program{
		Name:        "Go right",
		Description: "Walks right and never stops.",
		Cards: []Card{
			{
				Name: "Go right",
				On:   Instruction{Move: Move(Right), Next: Goto(0)},
				Off:  Instruction{Move: Move(Right), Next: Goto(0)},
			},
		},
	}
}

// LightTheWorld zig-zags outwards from the origin lighting every cell.
func LightTheWorld() *Program {
	return &Program{
		Name:        "Light the world",
		Description: "Lights cells on both sides of the origin.",
		Cards: []Card{
			{
				Name: "LEFT",
				On:   Instruction{Write: Write(true), Move: Move(Left), Next: Goto(0)},
				Off:  Instruction{Write: Write(true), Move: Move(Right), Next: Goto(1)},
			},
			{
				Name: "RIGHT",
				On:   Instruction{Write: Write(true), Move: Move(Right), Next: Goto(1)},
				Off:  Instruction{Write: Write(true), Move: Move(Left), Next: Goto(0)},
			},
		},
	}
}
