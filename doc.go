// Package matcha is a minimal runtime for terminal applications built as a
// unidirectional message loop. An application provides a state struct with
// two methods: Update, which reacts to incoming messages and may schedule
// deferred work, and View, which renders the current state. The runtime owns
// everything else: it polls terminal input, fans scheduled commands out to
// worker goroutines, and drives the update/render cycle so that every
// processed message is followed by exactly one render.
//
// The moving parts are deliberately few. Messages are plain Go values
// inspected by type switch. Commands are nullary functions returning an
// optional message. Two built-in messages carry control meaning: QuitMsg
// ends the loop, BatchMsg schedules several commands at once. Everything
// else passes through to the application untouched.
//
// A complete program:
//
//	type model struct {
//		count int
//	}
//
//	type tickMsg struct{}
//
//	func tick() matcha.Msg {
//		time.Sleep(time.Second)
//		return tickMsg{}
//	}
//
//	func (m *model) Update(msg matcha.Msg) matcha.Cmd {
//		switch msg.(type) {
//		case tickMsg:
//			m.count++
//			return tick
//		case input.KeyEvent:
//			return matcha.Quit
//		}
//		return nil
//	}
//
//	func (m *model) View(w io.Writer) {
//		fmt.Fprintf(w, "%d\r\n", m.count)
//	}
//
//	func main() {
//		if err := matcha.NewProgram(&model{}).Run(); err != nil {
//			fmt.Fprintln(os.Stderr, err)
//			os.Exit(1)
//		}
//	}
//
// Update and View always run on the goroutine that called Run; application
// state is never touched concurrently. Commands run on their own goroutines
// and are allowed to block for as long as they like.
package matcha
