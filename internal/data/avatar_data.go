package data

// avatarDef — определение аватара: какие abilities входят в его депо.
type avatarDef struct {
	id        int32
	name      string
	abilities []string
}

var avatarDefs = []avatarDef{
	{
		id:   10000021,
		name: "Emberin",
		abilities: []string{
			"Avatar_Emberin_FlameStrike",
			"Avatar_Emberin_EmberVeil",
			"Avatar_Emberin_CinderBurst",
			"Avatar_Default_Sprint",
		},
	},
	{
		id:   10000034,
		name: "Lushan",
		abilities: []string{
			"Avatar_Lushan_StoneLance",
			"Avatar_Lushan_Bulwark",
			"Avatar_Default_Sprint",
		},
	},
	{
		id:   10000047,
		name: "Nerissa",
		abilities: []string{
			"Avatar_Nerissa_TideSurge",
			"Avatar_Nerissa_MistWeave",
			"Avatar_Default_Sprint",
		},
	},
}
