package pokemon

// Moves that are never worth running, for any species. TACKLE is restored
// for Ursaluna through its keep list.
var ExcludedFastMoves = []string{
	"ACID",
	"ASTONISH",
	"CHARGE_BEAM",
	"EXTRASENSORY",
	"FEINT_ATTACK",
	"FROST_BREATH",
	"IRON_TAIL",
	"LOW_KICK",
	"PECK",
	"POUND",
	"ROCK_SMASH",
	"SUCKER_PUNCH",
	"TACKLE",
	"TAKE_DOWN",
	"YAWN",
	"ZEN_HEADBUTT",
}

var ExcludedChargedMoves = []string{
	"GIGA_IMPACT",
	"GYRO_BALL",
	"HEAT_WAVE",
	"LOW_SWEEP",
	"TWISTER",
}

// MovesetOverrides holds per-species adjustments, keyed by species id.
// Keep alphabetized.
var MovesetOverrides = map[string]MovesetOverride{
	"abomasnow": {Charged: MoveRule{Remove: []string{"BLIZZARD"}}},
	"altaria":   {Charged: MoveRule{Remove: []string{"DRAGON_PULSE", "DAZZLING_GLEAM"}}},
	"ampharos":  {Fast: MoveRule{Remove: []string{"CHARGE_BEAM"}}},
	"arctibax": {
		Fast:    MoveRule{Remove: []string{"ICE_FANG"}},
		Charged: MoveRule{Remove: []string{"OUTRAGE"}},
	},
	"carbink": {Charged: MoveRule{Remove: []string{"POWER_GEM"}}},
	"charizard": {
		Fast:    MoveRule{Remove: []string{"EMBER", "AIR_SLASH"}},
		Charged: MoveRule{Remove: []string{"FLAMETHROWER", "OVERHEAT", "FIRE_BLAST"}},
	},
	"charjabug": {Fast: MoveRule{Remove: []string{"SPARK"}}},
	"clefable":  {Charged: MoveRule{Remove: []string{"DAZZLING_GLEAM"}}},
	"clodsire":  {Charged: MoveRule{Remove: []string{"WATER_PULSE"}}},
	"cobalion":  {Fast: MoveRule{Keep: []string{"DOUBLE_KICK"}}},
	"cradily": {
		Fast:    MoveRule{Remove: []string{"INFESTATION"}},
		Charged: MoveRule{Remove: []string{"STONE_EDGE"}},
	},
	"crocalor":  {Fast: MoveRule{Remove: []string{"BITE"}}},
	"dewgong":   {Charged: MoveRule{Remove: []string{"AURORA_BEAM", "AQUA_JET", "BLIZZARD"}}},
	"dialga":    {Fast: MoveRule{Keep: []string{"DRAGON_BREATH"}}},
	"dragonair": {Charged: MoveRule{Remove: []string{"WRAP"}}},
	"dragonite": {
		Fast:    MoveRule{Remove: []string{"STEEL_WING"}},
		Charged: MoveRule{Remove: []string{"DRAGON_PULSE", "HYPER_BEAM", "DRACO_METEOR"}},
	},
	"drapion":  {Fast: MoveRule{Remove: []string{"ICE_FANG", "INFESTATION"}}},
	"drifblim": {Charged: MoveRule{Remove: []string{"OMINOUS_WIND"}}},
	"empoleon": {
		Fast:    MoveRule{Remove: []string{"METAL_CLAW", "WATERFALL"}},
		Charged: MoveRule{Remove: []string{"HYDRO_PUMP"}},
	},
	"escavalier": {Fast: MoveRule{Remove: []string{"BUG_BITE"}}},
	"excadrill": {
		Fast:    MoveRule{Remove: []string{"METAL_CLAW"}},
		Charged: MoveRule{Remove: []string{"EARTHQUAKE"}},
	},
	"ferrothorn": {Fast: MoveRule{Remove: []string{"METAL_CLAW"}}},
	"flygon":     {Charged: MoveRule{Remove: []string{"EARTH_POWER", "BOOMBURST"}}},
	"gallade":    {Charged: MoveRule{Remove: []string{"SYNCHRONOISE"}}},
	"garchomp":   {Charged: MoveRule{Remove: []string{"EARTHQUAKE"}}},
	"gastrodon":  {Fast: MoveRule{Remove: []string{"HIDDEN_POWER"}}},
	"gligar":     {Fast: MoveRule{Remove: []string{"FURY_CUTTER"}}},
	"golisopod": {
		Fast:    MoveRule{Remove: []string{"FURY_CUTTER", "METAL_CLAW"}},
		Charged: MoveRule{Remove: []string{"AQUA_JET"}},
	},
	"goodra": {
		Fast:    MoveRule{Remove: []string{"WATER_GUN"}},
		Charged: MoveRule{Remove: []string{"MUDDY_WATER"}},
	},
	"granbull": {Fast: MoveRule{Remove: []string{"BITE"}}},
	"greedent": {Fast: MoveRule{Remove: []string{"BITE"}}},
	"greninja": {Charged: MoveRule{Keep: []string{"NIGHT_SLASH", "HYDRO_CANNON"}}},
	"groudon":  {Charged: MoveRule{Remove: []string{"FIRE_BLAST"}}},
	"gyarados": {
		Fast:    MoveRule{Remove: []string{"BITE"}},
		Charged: MoveRule{Remove: []string{"TWISTER", "DRAGON_PULSE"}},
	},
	"haunter": {
		Fast:    MoveRule{Remove: []string{"LICK"}},
		Charged: MoveRule{Remove: []string{"DARK_PULSE"}},
	},
	"haxorus": {Charged: MoveRule{Remove: []string{"DRAGON_CLAW"}}},
	"ho_oh": {
		Fast:    MoveRule{Keep: []string{"INCINERATE"}},
		Charged: MoveRule{Remove: []string{"FIRE_BLAST"}},
	},
	"ivysaur": {Charged: MoveRule{Remove: []string{"SOLAR_BEAM"}}},
	"kartana": {Fast: MoveRule{Remove: []string{"AIR_SLASH"}}},
	"kyogre":  {Charged: MoveRule{Remove: []string{"HYDRO_PUMP"}}},
	"landorus_therian": {
		Fast:    MoveRule{Remove: []string{"EXTRASENSORY"}},
		Charged: MoveRule{Remove: []string{"BULLDOZE"}},
	},
	"lickitung": {Charged: MoveRule{Remove: []string{"STOMP", "HYPER_BEAM"}}},
	"lucario": {
		Fast:    MoveRule{Remove: []string{"BULLET_PUNCH"}},
		Charged: MoveRule{Remove: []string{"CLOSE_COMBAT"}},
	},
	"lugia": {
		Fast:    MoveRule{Remove: []string{"EXTRASENSORY"}},
		Charged: MoveRule{Remove: []string{"FUTURE_SIGHT"}},
	},
	"magneton":  {Fast: MoveRule{Remove: []string{"SPARK"}}},
	"magnezone": {Fast: MoveRule{Remove: []string{"SPARK"}}},
	"mamoswine": {Charged: MoveRule{Remove: []string{"ANCIENT_POWER"}}},
	"marshtomp": {Fast: MoveRule{Remove: []string{"WATER_GUN"}}},
	"mawile": {
		Fast:    MoveRule{Remove: []string{"BITE", "ICE_FANG"}},
		Charged: MoveRule{Remove: []string{"VICE_GRIP"}},
	},
	"melmetal":            {Charged: MoveRule{Remove: []string{"HYPER_BEAM", "FLASH_CANNON"}}},
	"metagross":           {Charged: MoveRule{Remove: []string{"PSYCHIC", "FLASH_CANNON"}}},
	"metang":              {Charged: MoveRule{Keep: []string{"RETURN", "GYRO_BALL", "PSYSHOCK"}}},
	"mewtwo":              {Charged: MoveRule{Remove: []string{"PSYCHIC", "HYPER_BEAM"}}},
	"muk_alolan":          {Fast: MoveRule{Remove: []string{"BITE"}}},
	"necrozma_dawn_wings": {Fast: MoveRule{Remove: []string{"METAL_CLAW"}}},
	"necrozma_dusk_mane":  {Fast: MoveRule{Remove: []string{"METAL_CLAW"}}},
	"nidorina":            {Fast: MoveRule{Remove: []string{"BITE"}}},
	"nidorino":            {Charged: MoveRule{Remove: []string{"HORN_ATTACK"}}},
	"ninetales_alolan": {
		Fast:    MoveRule{Remove: []string{"FEINT_ATTACK"}},
		Charged: MoveRule{Remove: []string{"BLIZZARD", "ICE_BEAM"}},
	},
	"noctowl":   {Charged: MoveRule{Remove: []string{"NIGHT_SHADE", "PSYCHIC"}}},
	"obstagoon": {Fast: MoveRule{Remove: []string{"LICK"}}},
	"pelipper": {
		Fast:    MoveRule{Remove: []string{"WATER_GUN"}},
		Charged: MoveRule{Remove: []string{"HYDRO_PUMP"}},
	},
	"pidgeot": {
		Fast:    MoveRule{Remove: []string{"AIR_SLASH"}},
		Charged: MoveRule{Remove: []string{"AIR_CUTTER", "HURRICANE"}},
	},
	"piloswine": {
		Fast:    MoveRule{Remove: []string{"ICE_SHARD"}},
		Charged: MoveRule{Remove: []string{"BULLDOZE"}},
	},
	"poliwrath": {
		Fast:    MoveRule{Remove: []string{"ROCK_SMASH", "BUBBLE"}},
		Charged: MoveRule{Remove: []string{"HYDRO_PUMP", "SUBMISSION"}},
	},
	"primeape":  {Fast: MoveRule{Remove: []string{"KARATE_CHOP"}}},
	"quagsire":  {Charged: MoveRule{Remove: []string{"SLUDGE_BOMB"}}},
	"quaquaval": {Charged: MoveRule{Remove: []string{"AQUA_JET"}}},
	"registeel": {
		Fast:    MoveRule{Keep: []string{"LOCK_ON"}},
		Charged: MoveRule{Remove: []string{"HYPER_BEAM"}},
	},
	"rhyperior": {Charged: MoveRule{Remove: []string{"SKULL_BASH", "STONE_EDGE"}}},
	"sableye":   {Charged: MoveRule{Keep: []string{"FOUL_PLAY", "POWER_GEM", "RETURN"}}},
	"sandslash_alolan": {
		Fast:    MoveRule{Remove: []string{"METAL_CLAW"}},
		Charged: MoveRule{Remove: []string{"BULLDOZE", "GYRO_BALL", "BLIZZARD"}},
	},
	"sealeo": {
		Fast:    MoveRule{Remove: []string{"WATER_GUN"}},
		Charged: MoveRule{Keep: []string{"RETURN", "AURORA_BEAM", "WATER_PULSE", "BODY_SLAM"}},
	},
	"serperior":  {Charged: MoveRule{Remove: []string{"GRASS_KNOT"}}},
	"skeledirge": {Fast: MoveRule{Remove: []string{"BITE"}}},
	"snorlax":    {Charged: MoveRule{Remove: []string{"HYPER_BEAM", "HEAVY_SLAM", "EARTHQUAKE"}}},
	"steelix": {
		Fast:    MoveRule{Keep: []string{"DRAGON_TAIL"}},
		Charged: MoveRule{Remove: []string{"HEAVY_SLAM"}},
	},
	"stunfisk_galarian": {Fast: MoveRule{Remove: []string{"METAL_CLAW"}}},
	"swampert": {
		Fast:    MoveRule{Keep: []string{"MUD_SHOT"}},
		Charged: MoveRule{Remove: []string{"MUDDY_WATER", "SURF"}},
	},
	"sylveon": {Charged: MoveRule{Remove: []string{"DAZZLING_GLEAM"}}},
	"talonflame": {
		Fast:    MoveRule{Keep: []string{"INCINERATE"}},
		Charged: MoveRule{Remove: []string{"HURRICANE", "FIRE_BLAST"}},
	},
	"tapu_fini":  {Fast: MoveRule{Remove: []string{"HIDDEN_POWER"}}},
	"tentacruel": {Fast: MoveRule{Keep: []string{"POISON_JAB"}}},
	"togekiss":   {Fast: MoveRule{Remove: []string{"HIDDEN_POWER"}}},
	"togetic":    {Fast: MoveRule{Remove: []string{"EXTRASENSORY", "HIDDEN_POWER"}}},
	"togedemaru": {Fast: MoveRule{Remove: []string{"SPARK"}}},
	"toxapex":    {Fast: MoveRule{Remove: []string{"BITE"}}},
	"toxicroak":  {Fast: MoveRule{Remove: []string{"POISON_JAB"}}},
	"turtonator": {Fast: MoveRule{Remove: []string{"EMBER", "FIRE_SPIN"}}},
	"ursaluna":   {Fast: MoveRule{Keep: []string{"TACKLE"}}},
	"venusaur": {
		Fast:    MoveRule{Remove: []string{"RAZOR_LEAF"}},
		Charged: MoveRule{Remove: []string{"PETAL_BLIZZARD", "SOLAR_BEAM"}},
	},
	"victreebel": {
		Fast:    MoveRule{Remove: []string{"ACID"}},
		Charged: MoveRule{Remove: []string{"SOLAR_BEAM"}},
	},
	"vigoroth": {
		Fast:    MoveRule{Remove: []string{"SCRATCH"}},
		Charged: MoveRule{Remove: []string{"BRICK_BREAK"}},
	},
	"virizion": {Fast: MoveRule{Keep: []string{"DOUBLE_KICK"}}},
	"walrein": {
		Fast:    MoveRule{Keep: []string{"POWDER_SNOW"}},
		Charged: MoveRule{Keep: []string{"ICICLE_SPEAR", "EARTHQUAKE"}},
	},
	"weezing_galarian": {Charged: MoveRule{Remove: []string{"HYPER_BEAM"}}},
	"whiscash":         {Charged: MoveRule{Remove: []string{"WATER_PULSE"}}},
	"wigglytuff":       {Charged: MoveRule{Remove: []string{"ICE_BEAM", "HYPER_BEAM"}}},
	"wormadam_trash": {
		Fast:    MoveRule{Remove: []string{"BUG_BITE"}},
		Charged: MoveRule{Remove: []string{"PSYBEAM"}},
	},
	"xerneas":     {Fast: MoveRule{Keep: []string{"GEOMANCY"}}},
	"yveltal":     {Charged: MoveRule{Remove: []string{"PSYCHIC", "HYPER_BEAM"}}},
	"zacian_hero": {Fast: MoveRule{Remove: []string{"METAL_CLAW", "FIRE_FANG"}}},
	"zarude": {
		Fast:    MoveRule{Remove: []string{"BITE"}},
		Charged: MoveRule{Remove: []string{"ENERGY_BALL"}},
	},
	"zweilous": {Fast: MoveRule{Remove: []string{"BITE"}}},
	"zygarde_complete": {
		Fast:    MoveRule{Remove: []string{"BITE"}},
		Charged: MoveRule{Remove: []string{"BULLDOZE", "HYPER_BEAM"}},
	},
}

// DefaultCanonicalizer applies ExcludedFastMoves, ExcludedChargedMoves and
// MovesetOverrides.
var DefaultCanonicalizer = MustCanonicalizer(ExcludedFastMoves, ExcludedChargedMoves, MovesetOverrides)
