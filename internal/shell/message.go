package shell

const (
	oopsErr = "Oops! Something went wrong. Please try again later."

	menuTitle = "Contact Manager"
	menuBody  = `1. Register
2. Login
3. Add Contact
4. View Contacts
5. Update Contact
6. Delete Contact
7. Exit`

	promptChoice    = "Enter your choice: "
	promptUsername  = "Enter username: "
	promptPassword  = "Enter password: "
	promptUserID    = "Enter user ID: "
	promptContactID = "Enter contact ID: "
	promptName      = "Enter contact name: "
	promptNewName   = "Enter new contact name: "
	promptEmail     = "Enter contact email: "
	promptNewEmail  = "Enter new contact email: "
	promptPhone     = "Enter contact phone (10 digits starting with 7, 8 or 9): "
	promptNewPhone  = "Enter new contact phone (10 digits starting with 7, 8 or 9): "

	msgInvalidChoice  = "Invalid choice. Please try again."
	msgInvalidEmail   = "Invalid email format. Please try again."
	msgInvalidPhone   = "Invalid phone number format. Please try again."
	msgRegistered     = "User registered successfully."
	msgUsernameTaken  = "Username already exists. Please choose another one."
	msgLoginOK        = "Login successful. Your user ID is %d."
	msgLoginFailed    = "Invalid username or password."
	msgContactAdded   = "Contact added successfully."
	msgContactUpdated = "Contact updated successfully."
	msgContactDeleted = "Contact deleted successfully."
	msgNoContacts     = "No contacts found."
	msgNotFound       = "No %s found with ID %d."
	msgInvalidInput   = "Input rejected: %s"
	msgConstraint     = "Could not save: %s"
	msgGoodbye        = "Goodbye!"
)
