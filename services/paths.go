package services

// Remote database paths. The hierarchy is an external contract shared with
// the mobile clients.

func chatMetaPath(userID string) string {
	return "chat_meta_data/" + userID
}

func chatMetaEntryPath(userID, partnerID string) string {
	return "chat_meta_data/" + userID + "/" + partnerID
}

func privateMessagesPath(chatID string) string {
	return "private_messages/" + chatID
}

func statusPath(userID string) string {
	return "status/" + userID
}
