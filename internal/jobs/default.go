package jobs

// DefaultTable builds the standard table: 22 jobs, each with the skills
// the classifier keys on.
func DefaultTable() *Table {
	return NewTable(defaultJobs)
}

var defaultJobs = []Job{
	{Abbrev: "PLD", Role: RoleTank, Skills: []Skill{
		{Name: "Fast Blade", Potency: 200, Type: "weaponskill"},
		{Name: "Riot Blade", Potency: 300, Type: "weaponskill"},
		{Name: "Royal Authority", Potency: 440, Type: "weaponskill"},
		{Name: "Holy Spirit", Potency: 350, Type: "spell"},
		{Name: "Goring Blade", Potency: 700, Type: "weaponskill"},
	}},
	{Abbrev: "WAR", Role: RoleTank, Skills: []Skill{
		{Name: "Heavy Swing", Potency: 200, Type: "weaponskill"},
		{Name: "Maim", Potency: 300, Type: "weaponskill"},
		{Name: "Storm's Path", Potency: 440, Type: "weaponskill"},
		{Name: "Fell Cleave", Potency: 520, Type: "weaponskill"},
	}},
	{Abbrev: "DRK", Role: RoleTank, Skills: []Skill{
		{Name: "Hard Slash", Potency: 200, Type: "weaponskill"},
		{Name: "Syphon Strike", Potency: 300, Type: "weaponskill"},
		{Name: "Souleater", Potency: 440, Type: "weaponskill"},
		{Name: "Bloodspiller", Potency: 580, Type: "weaponskill"},
	}},
	{Abbrev: "GNB", Role: RoleTank, Skills: []Skill{
		{Name: "Keen Edge", Potency: 200, Type: "weaponskill"},
		{Name: "Brutal Shell", Potency: 300, Type: "weaponskill"},
		{Name: "Solid Barrel", Potency: 360, Type: "weaponskill"},
		{Name: "Burst Strike", Potency: 460, Type: "weaponskill"},
	}},
	{Abbrev: "WHM", Role: RoleHealer, Skills: []Skill{
		{Name: "Glare III", Potency: 310, Type: "spell"},
		{Name: "Dia", Potency: 65, Type: "spell"},
		{Name: "Cure II", Potency: 800, Type: "spell"},
		{Name: "Holy III", Potency: 150, Type: "spell"},
	}},
	{Abbrev: "SCH", Role: RoleHealer, Skills: []Skill{
		{Name: "Broil IV", Potency: 295, Type: "spell"},
		{Name: "Biolysis", Potency: 70, Type: "spell"},
		{Name: "Adloquium", Potency: 300, Type: "spell"},
		{Name: "Art of War II", Potency: 180, Type: "spell"},
	}},
	{Abbrev: "AST", Role: RoleHealer, Skills: []Skill{
		{Name: "Fall Malefic", Potency: 250, Type: "spell"},
		{Name: "Combust III", Potency: 55, Type: "spell"},
		{Name: "Benefic II", Potency: 800, Type: "spell"},
		{Name: "Gravity II", Potency: 130, Type: "spell"},
	}},
	{Abbrev: "SGE", Role: RoleHealer, Skills: []Skill{
		{Name: "Dosis III", Potency: 330, Type: "spell"},
		{Name: "Eukrasian Dosis III", Potency: 75, Type: "spell"},
		{Name: "Phlegma III", Potency: 600, Type: "spell"},
		{Name: "Toxikon II", Potency: 330, Type: "ability"},
	}},
	{Abbrev: "MNK", Role: RoleDPS, Skills: []Skill{
		{Name: "Bootshine", Potency: 210, Type: "weaponskill"},
		{Name: "True Strike", Potency: 300, Type: "weaponskill"},
		{Name: "Snap Punch", Potency: 270, Type: "weaponskill"},
		{Name: "Dragon Kick", Potency: 320, Type: "weaponskill"},
	}},
	{Abbrev: "DRG", Role: RoleDPS, Skills: []Skill{
		{Name: "True Thrust", Potency: 230, Type: "weaponskill"},
		{Name: "Vorpal Thrust", Potency: 280, Type: "weaponskill"},
		{Name: "Heavens' Thrust", Potency: 480, Type: "weaponskill"},
		{Name: "Fang and Claw", Potency: 300, Type: "weaponskill"},
	}},
	{Abbrev: "NIN", Role: RoleDPS, Skills: []Skill{
		{Name: "Spinning Edge", Potency: 220, Type: "weaponskill"},
		{Name: "Gust Slash", Potency: 320, Type: "weaponskill"},
		{Name: "Aeolian Edge", Potency: 440, Type: "weaponskill"},
		{Name: "Trick Attack", Potency: 400, Type: "ability"},
	}},
	{Abbrev: "SAM", Role: RoleDPS, Skills: []Skill{
		{Name: "Hakaze", Potency: 200, Type: "weaponskill"},
		{Name: "Jinpu", Potency: 280, Type: "weaponskill"},
		{Name: "Gekko", Potency: 380, Type: "weaponskill"},
		{Name: "Midare Setsugekka", Potency: 640, Type: "weaponskill"},
	}},
	{Abbrev: "RPR", Role: RoleDPS, Skills: []Skill{
		{Name: "Slice", Potency: 320, Type: "weaponskill"},
		{Name: "Waxing Slice", Potency: 400, Type: "weaponskill"},
		{Name: "Infernal Slice", Potency: 500, Type: "weaponskill"},
		{Name: "Plentiful Harvest", Potency: 720, Type: "weaponskill"},
	}},
	{Abbrev: "VPR", Role: RoleDPS, Skills: []Skill{
		{Name: "Steel Fangs", Potency: 200, Type: "weaponskill"},
		{Name: "Hunter's Sting", Potency: 260, Type: "weaponskill"},
		{Name: "Flanksting Strike", Potency: 400, Type: "weaponskill"},
	}},
	{Abbrev: "BRD", Role: RoleDPS, Skills: []Skill{
		{Name: "Heavy Shot", Potency: 160, Type: "weaponskill"},
		{Name: "Burst Shot", Potency: 220, Type: "weaponskill"},
		{Name: "Refulgent Arrow", Potency: 280, Type: "weaponskill"},
		{Name: "Sidewinder", Potency: 320, Type: "ability"},
	}},
	{Abbrev: "MCH", Role: RoleDPS, Skills: []Skill{
		{Name: "Split Shot", Potency: 200, Type: "weaponskill"},
		{Name: "Slug Shot", Potency: 300, Type: "weaponskill"},
		{Name: "Clean Shot", Potency: 380, Type: "weaponskill"},
		{Name: "Drill", Potency: 600, Type: "weaponskill"},
	}},
	{Abbrev: "DNC", Role: RoleDPS, Skills: []Skill{
		{Name: "Cascade", Potency: 220, Type: "weaponskill"},
		{Name: "Fountain", Potency: 280, Type: "weaponskill"},
		{Name: "Reverse Cascade", Potency: 280, Type: "weaponskill"},
		{Name: "Fan Dance", Potency: 150, Type: "ability"},
	}},
	{Abbrev: "BLM", Role: RoleDPS, Skills: []Skill{
		{Name: "Fire IV", Potency: 310, Type: "spell"},
		{Name: "Blizzard III", Potency: 260, Type: "spell"},
		{Name: "Thunder III", Potency: 50, Type: "spell"},
		{Name: "Despair", Potency: 340, Type: "spell"},
	}},
	{Abbrev: "SMN", Role: RoleDPS, Skills: []Skill{
		{Name: "Ruin III", Potency: 310, Type: "spell"},
		{Name: "Astral Impulse", Potency: 440, Type: "spell"},
		{Name: "Fester", Potency: 340, Type: "ability"},
		{Name: "Energy Drain", Potency: 100, Type: "ability"},
	}},
	{Abbrev: "RDM", Role: RoleDPS, Skills: []Skill{
		{Name: "Jolt II", Potency: 280, Type: "spell"},
		{Name: "Verthunder III", Potency: 380, Type: "spell"},
		{Name: "Veraero III", Potency: 380, Type: "spell"},
		{Name: "Verholy", Potency: 600, Type: "spell"},
	}},
	{Abbrev: "BLU", Role: RoleDPS, Skills: []Skill{
		{Name: "Water Cannon", Potency: 200, Type: "spell"},
		{Name: "Sonic Boom", Potency: 210, Type: "spell"},
		{Name: "Moon Flute", Potency: 0, Type: "spell"},
	}},
	{Abbrev: "PCT", Role: RoleDPS, Skills: []Skill{
		{Name: "Fire in Red", Potency: 440, Type: "spell"},
		{Name: "Aero in Green", Potency: 480, Type: "spell"},
		{Name: "Water in Blue", Potency: 520, Type: "spell"},
	}},
}
