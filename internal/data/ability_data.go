package data

// abilityDef — определение ability из клиентских конфигов.
// specials — базовые числовые параметры; modifiers — имена вложенных
// модификаторов (нужны hash-индексу, их собственные конфиги живут в
// ability-графе клиента и сервером не исполняются).
type abilityDef struct {
	name      string
	specials  map[string]float64
	modifiers []string
}

var abilityDefs = []abilityDef{
	{
		name: "Avatar_Emberin_FlameStrike",
		specials: map[string]float64{
			"flameStrike_DMG":      1.25,
			"flameStrike_CD":       8.0,
			"flameStrike_Duration": 4.0,
		},
		modifiers: []string{"FlameStrike_Burn", "FlameStrike_Boost"},
	},
	{
		name: "Avatar_Emberin_EmberVeil",
		specials: map[string]float64{
			"emberVeil_ShieldScale": 0.4,
			"emberVeil_Interval":    2.5,
		},
		modifiers: []string{"EmberVeil_Shield"},
	},
	{
		name: "Avatar_Emberin_CinderBurst",
		specials: map[string]float64{
			"cinderBurst_DMG":    2.1,
			"cinderBurst_Energy": 60.0,
		},
		modifiers: []string{"CinderBurst_Field", "CinderBurst_Ignite"},
	},
	{
		name: "Avatar_Lushan_StoneLance",
		specials: map[string]float64{
			"stoneLance_DMG":   1.1,
			"stoneLance_Count": 1.0,
		},
		modifiers: []string{"StoneLance_Spike"},
	},
	{
		name: "Avatar_Lushan_Bulwark",
		specials: map[string]float64{
			"bulwark_Absorb":   0.3,
			"bulwark_Duration": 12.0,
		},
		modifiers: []string{"Bulwark_Harden", "Bulwark_Reflect"},
	},
	{
		name: "Avatar_Nerissa_TideSurge",
		specials: map[string]float64{
			"tideSurge_DMG":    0.95,
			"tideSurge_HealHP": 0.12,
			"tideSurge_CD":     10.0,
		},
		modifiers: []string{"TideSurge_Wave"},
	},
	{
		name: "Avatar_Nerissa_MistWeave",
		specials: map[string]float64{
			"mistWeave_DMG":      1.6,
			"mistWeave_Duration": 8.0,
			"mistWeave_TickRate": 1.5,
		},
		modifiers: []string{"MistWeave_Veil", "MistWeave_Soak"},
	},
	{
		// shared movement ability, present on every depot
		name: "Avatar_Default_Sprint",
		specials: map[string]float64{
			"sprint_StaminaCost": 18.0,
			"sprint_Speed":       1.4,
		},
		modifiers: []string{"Sprint_Dash"},
	},
}
