package cli

import "fmt"

// Support shows the contact details.
func (a *App) Support() error {
	a.console.clearScreen()
	a.console.println("SUPPORT")
	a.console.println("")
	a.console.println("If you face any kind of problem contact us at---")
	a.console.println("")
	a.console.println("")
	a.console.println("Phone : 018********")
	a.console.println("E-mail : snaphire@gmail.com")
	a.console.println("Address : IIUC Library, Chittagong")
	a.console.println("")
	return a.console.pause()
}

var team = []string{
	"MD SAYEED ABRAR AQIL (C243067)",
	"SAYED MOHAMMAD OMAR (C243004)",
	"SHAJIDUL HOQUE GALIB (C243105)",
	"SAWAD SARWAR TANMOY (C243144)",
}

// About lists the team.
func (a *App) About() error {
	a.console.clearScreen()
	a.console.println("ABOUT US")
	a.console.println("")
	for i, name := range team {
		a.console.println(fmt.Sprintf("%d. %s", i+1, name))
		a.console.println("")
	}
	return a.console.pause()
}
