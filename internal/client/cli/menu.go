package cli

type menu struct {
	title string
	items []string
}

const (
	mainLogin = iota + 1
	mainSignup
	mainQuit
)

const (
	userServices = iota + 1
	userSupport
	userAbout
	userLogout
)

const (
	servicesBrowse = iota + 1
	servicesPost
	servicesBack
)

var (
	mainMenu = menu{
		title: "MAIN MENU",
		items: []string{"User login", "User signup", "Quit"},
	}
	userMenu = menu{
		title: "USER MENU",
		items: []string{"Services", "Support", "About Us", "Logout"},
	}
	servicesMenu = menu{
		title: "SERVICES MENU",
		items: []string{"Browse jobs", "Post a Job", "Back"},
	}
)
