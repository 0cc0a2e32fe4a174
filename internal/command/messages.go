package command

// User-facing messages.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidIndex         = "The person index provided is invalid"
	MessageNonPositiveIndex     = "Index is not a non-zero unsigned integer."
	MessageDuplicatePerson      = "This person already exists in the address book"
	MessageDuplicatePrefixes    = "Multiple values specified for the following single-valued field(s): %s"
	MessageNothingToEdit        = "At least one field to edit must be provided."
	MessageCancelled            = "Operation cancelled."
	MessageInvalidConfirmation  = "Invalid confirmation input. Please answer y or n."
	MessageNothingPending       = "There is no operation awaiting confirmation."
	MessageSaveFailed           = "Could not save data to file: "
	MessageExportFailed         = "Could not export contacts: "
	MessageNoExporter           = "Export is not available in this session."
	MessageUnsupportedCommand   = "Unsupported command: %s"

	MessageAddSuccess       = "New person added: %s"
	MessageDeletePrompt     = "Confirm deletion [y/n] of: %s?"
	MessageDeleteSuccess    = "Deleted Person: %s"
	MessageEditSuccess      = "Edited Person: %s"
	MessagePersonsListed    = "%d persons listed!"
	MessageListSuccess      = "Listed all persons"
	MessageSortByName       = "Sorted all persons alphabetically"
	MessageSortByRecent     = "Sorted all persons by most recently added"
	MessagePinSuccess       = "Pinned Person: %s"
	MessageUnpinSuccess     = "Unpinned Person: %s"
	MessageAlreadyPinned    = "%s is already pinned"
	MessageNotPinned        = "%s is not pinned"
	MessageTagRenamed       = "Renamed tag [%s] to [%s] for %d persons"
	MessageTagNotFound      = "No person has the tag [%s]"
	MessageTagUnchanged     = "The new tag name must be different from the old one"
	MessageClearPrompt      = "Confirm clearing [y/n] of all persons?"
	MessageClearSuccess     = "Address book has been cleared!"
	MessageExportSuccess    = "Exported %d persons to %s"
	MessageExportExtension  = "Export files must end in .csv, .yaml or .yml"
	MessageHelpWindowOpened = "Opened help window."
	MessageExit             = "Exiting address book as requested ..."
)
