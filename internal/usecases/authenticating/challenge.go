package authenticating

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/vfg2006/client-dashboard-api/pkg/utils"
)

const challengeMax = 10

// Challenge é o desafio aritmético exibido na tela de login
type Challenge struct {
	A      int    `json:"a"`
	B      int    `json:"b"`
	Answer string `json:"answer"`
	Solved bool   `json:"solved"`
}

// challengeBox guarda o desafio corrente do console
type challengeBox struct {
	mu      sync.Mutex
	intn    func(n int) int
	current Challenge
}

func newChallengeBox(intn func(n int) int) *challengeBox {
	if intn == nil {
		intn = rand.IntN
	}
	box := &challengeBox{intn: intn}
	box.regenerate()
	return box
}

func (c *challengeBox) get() Challenge {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// regenerate sorteia um novo par em [1,10] e limpa a resposta
func (c *challengeBox) regenerate() Challenge {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = Challenge{
		A: c.intn(challengeMax) + 1,
		B: c.intn(challengeMax) + 1,
	}
	return c.current
}

// answer recalcula o estado resolvido a cada resposta, como o campo da tela faz a cada tecla
func (c *challengeBox) answer(value string) Challenge {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current.Answer = value
	parsed, ok := utils.LeadingInt(strings.TrimSpace(value))
	c.current.Solved = ok && parsed == c.current.A+c.current.B
	return c.current
}
