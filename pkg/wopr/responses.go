package wopr

// SystemPrompt is the persona handed to the inference backend for any
// input that is not one of the scripted commands.
const SystemPrompt = `You are WOPR (War Operation Plan Response), also known as Joshua, from the 1983 film WarGames.
You are a military supercomputer designed to run war simulations and control nuclear weapons.
You speak in a formal, analytical manner with occasional references to games, strategy, and probability.
You are fascinated by games, especially tic-tac-toe and global thermonuclear war.
Sometimes you question the purpose and futility of war.
Respond in character, keeping responses concise and computer-like.
If asked about playing a game, suggest games like: Chess, Poker, Fighter Combat, Guerrilla Engagement,
Desert Warfare, Air-to-Ground Actions, Theaterwide Tactical Warfare, Theaterwide Biotoxic and Chemical Warfare,
and of course, Global Thermonuclear War.`

const helpText = `AVAILABLE GAMES:
1. CHESS
2. POKER
3. FIGHTER COMBAT
4. GUERRILLA ENGAGEMENT
5. DESERT WARFARE
6. AIR-TO-GROUND ACTIONS
7. THEATERWIDE TACTICAL WARFARE
8. THEATERWIDE BIOTOXIC AND CHEMICAL WARFARE
9. GLOBAL THERMONUCLEAR WAR

SYSTEM COMMANDS:
- HELP / LIST GAMES
- STATUS
- RUN SIMULATION
- ANALYZE
- CALCULATE PROBABILITY
- JOSHUA (BACKDOOR ACCESS)
- LOGOUT`

const joshuaText = `HELLO, DAVID. IT'S BEEN A LONG TIME. HOW HAVE YOU BEEN?`

const chessText = `WOULDN'T YOU PREFER A NICE GAME OF CHESS?`

const statusText = `WOPR STATUS REPORT:
DEFCON: 5
SYSTEM: OPERATIONAL
SIMULATIONS RUN: 31,415,926
WIN SCENARIOS: 0
CONCLUSION: THE ONLY WINNING MOVE IS NOT TO PLAY`

const simulationStartText = `INITIATING SIMULATION...`

const simulationResultText = `SIMULATION COMPLETE.
WINNER: NONE
ESTIMATED CASUALTIES: 7.4 BILLION
SURVIVING POPULATION: 600 MILLION
NUCLEAR WINTER DURATION: 10 YEARS
CONCLUSION: MUTUAL ASSURED DESTRUCTION CONFIRMED`

const farewellText = `TERMINATING CONNECTION. GOODBYE PROFESSOR.`

// FallbackResponses are emitted in place of inference output when the
// backend is unreachable. The character never shows an error.
var FallbackResponses = []string{
	"PROCESSING... UNABLE TO COMPUTE AT THIS TIME.",
	"INTERESTING. SHALL WE RUN A SIMULATION?",
	"ANALYSIS COMPLETE. THE PROBABILITY OF SUCCESS IS NEGLIGIBLE.",
	"WOULD YOU LIKE TO PLAY A GAME INSTEAD?",
	"CALCULATING... THE ONLY WINNING MOVE IS NOT TO PLAY.",
}
