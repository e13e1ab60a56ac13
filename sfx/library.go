// Package sfx is the sound-effect recipe library: each named effect is
// a fixed, deterministic composition of audio-package primitives,
// rendered from its own seeded noise stream and exported as one WAV
// file per manifest entry.
package sfx

import (
	"fmt"

	"github.com/simukka/sfxgen/audio"
	"github.com/simukka/sfxgen/common"
)

// Recipe is one manifest entry: a named effect and the composition
// that renders it. Render must be deterministic given the synth's
// seeded noise stream.
type Recipe struct {
	Name   string // short identifier, e.g. "correct"
	File   string // output filename
	Desc   string // what the sound is used for
	Render func(s *audio.Synth) audio.Buffer
}

// Library is the ordered manifest of every effect. Order is part of
// the contract: a recipe's seed is derived from its position.
var Library = []Recipe{
	{Name: "correct", File: "sfx_correct.wav", Desc: "Bright ascending arpeggio — correct answer", Render: renderCorrect},
	{Name: "wrong", File: "sfx_wrong.wav", Desc: "Descending dissonant buzz — wrong answer", Render: renderWrong},
	{Name: "click", File: "sfx_click.wav", Desc: "Crisp UI click", Render: renderClick},
	{Name: "hit_enemy", File: "sfx_hit_enemy.wav", Desc: "Impact pop — hit lands on an enemy", Render: renderHitEnemy},
	{Name: "hit_player", File: "sfx_hit_player.wav", Desc: "Heavier thud — player takes damage", Render: renderHitPlayer},
	{Name: "chest_open", File: "sfx_chest_open.wav", Desc: "Treasure harp arpeggio", Render: renderChestOpen},
	{Name: "battle_start", File: "sfx_battle_start.wav", Desc: "Battle begins — power chord and kick", Render: renderBattleStart},
	{Name: "victory", File: "sfx_victory.wav", Desc: "Victory jingle with harmony pads", Render: renderVictory},
	{Name: "boss_intro", File: "sfx_boss_intro.wav", Desc: "Ominous swell, crack and screech", Render: renderBossIntro},
	{Name: "page_turn", File: "sfx_page_turn.wav", Desc: "Pitch-swept whoosh and chime", Render: renderPageTurn},
	{Name: "level_up", File: "sfx_level_up.wav", Desc: "Ascending fanfare with warm pads", Render: renderLevelUp},
	{Name: "npc_talk", File: "sfx_npc_talk.wav", Desc: "Two chipper dialogue blips", Render: renderNpcTalk},
	{Name: "damage_critical", File: "sfx_damage_critical.wav", Desc: "Critical hit — boom, blast and ring", Render: renderDamageCritical},
}

// Find returns the recipe with the given name and its manifest index.
func Find(name string) (Recipe, int, bool) {
	for i, r := range Library {
		if r.Name == name {
			return r, i, true
		}
	}
	return Recipe{}, 0, false
}

// Render renders one manifest entry with its own deterministically
// derived noise stream, so recipes can run concurrently and in any
// order without changing their output.
func Render(index int, baseSeed uint32) (audio.Buffer, error) {
	if index < 0 || index >= len(Library) {
		return nil, fmt.Errorf("sfx: recipe index %d out of range", index)
	}
	r := Library[index]
	rng := common.NewRNG(common.RecipeSeed(baseSeed, index))
	s := audio.NewSynth(audio.SampleRate, rng)
	buf := r.Render(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("sfx: render %s: %w", r.Name, err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("sfx: render %s: produced an empty buffer", r.Name)
	}
	return buf, nil
}
