package data

// proudSkillDef — уровень proud skill с param list и open config.
// paramList индексируется ссылками "%N" из модификаторов open config.
type proudSkillDef struct {
	id         int32
	level      int32
	openConfig string
	paramList  []float64
}

// modifierDef — сырой talent modifier из клиентских конфигов.
// delta/ratio: "" = отсутствует, число = литерал, "%N" = ссылка в paramList.
type modifierDef struct {
	kind    string
	ability string
	special string
	delta   string
	ratio   string
	cond    *predicateDef
}

// predicateDef — сырой предикат, гейтящий модификатор.
type predicateDef struct {
	kind  string
	logic string
	value float64
}

// openConfigDef — именованный упорядоченный список модификаторов.
// Порядок объявления значим: движок применяет модификаторы как есть.
type openConfigDef struct {
	name      string
	modifiers []modifierDef
}

var proudSkillDefs = []proudSkillDef{
	// Emberin: FlameStrike scaling
	{id: 212101, level: 1, openConfig: "Emberin_ProudSkill_21", paramList: []float64{0.18, 1.1, 0.0}},
	{id: 212101, level: 2, openConfig: "Emberin_ProudSkill_21", paramList: []float64{0.27, 1.2, 0.0}},
	{id: 212101, level: 3, openConfig: "Emberin_ProudSkill_21", paramList: []float64{0.36, 1.32, 0.0}},
	// Emberin: CinderBurst constellation-style upgrade
	{id: 212301, level: 1, openConfig: "Emberin_Talent_CinderRage", paramList: []float64{0.5, 1.15}},
	// Lushan: Bulwark upgrades
	{id: 234201, level: 1, openConfig: "Lushan_ProudSkill_42", paramList: []float64{0.08, 2.0}},
	{id: 234201, level: 2, openConfig: "Lushan_ProudSkill_42", paramList: []float64{0.12, 3.0}},
	// Nerissa: MistWeave aerial bonus
	{id: 247101, level: 1, openConfig: "Nerissa_Talent_Skyborne", paramList: []float64{0.4}},
}

var openConfigDefs = []openConfigDef{
	{
		name: "Emberin_ProudSkill_21",
		modifiers: []modifierDef{
			{
				kind:    "ModifyAbility",
				ability: "Avatar_Emberin_FlameStrike",
				special: "flameStrike_DMG",
				delta:   "%0",
				ratio:   "",
			},
			{
				kind:    "ModifyAbility",
				ability: "Avatar_Emberin_FlameStrike",
				special: "flameStrike_Duration",
				delta:   "",
				ratio:   "%1",
			},
			{
				// ratio 0 в конфиге означает "не трогать", а не обнуление
				kind:    "ModifyAbility",
				ability: "Avatar_Emberin_FlameStrike",
				special: "flameStrike_CD",
				delta:   "-0.5",
				ratio:   "0",
			},
		},
	},
	{
		name: "Emberin_Talent_CinderRage",
		modifiers: []modifierDef{
			{
				kind:    "ModifyAbility",
				ability: "Avatar_Emberin_CinderBurst",
				special: "cinderBurst_DMG",
				delta:   "%0",
				ratio:   "%1",
			},
			{
				kind:    "SetAbility",
				ability: "Avatar_Emberin_CinderBurst",
				special: "cinderBurst_Energy",
				delta:   "50",
			},
		},
	},
	{
		name: "Lushan_ProudSkill_42",
		modifiers: []modifierDef{
			{
				kind:    "ModifyAbility",
				ability: "Avatar_Lushan_Bulwark",
				special: "bulwark_Absorb",
				delta:   "%0",
				ratio:   "",
			},
			{
				kind:    "ModifyAbility",
				ability: "Avatar_Lushan_Bulwark",
				special: "bulwark_Duration",
				delta:   "%1",
				ratio:   "",
			},
		},
	},
	{
		name: "Nerissa_Talent_Skyborne",
		modifiers: []modifierDef{
			{
				// бонус действует только по приземлённым целям
				kind:    "ModifyAbility",
				ability: "Avatar_Nerissa_MistWeave",
				special: "mistWeave_DMG",
				delta:   "%0",
				ratio:   "",
				cond: &predicateDef{
					kind:  "ByTargetAltitude",
					logic: "LessThanEqual",
					value: 2.0,
				},
			},
		},
	},
}
