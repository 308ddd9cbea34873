package turbosms

// sendRequest тело запроса к TurboSMS API
type sendRequest struct {
	Recipients []string `json:"recipients"`
	SMS        smsBody  `json:"sms"`
}

type smsBody struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// sendResponse ответ TurboSMS API
// ResponseCode == 0 означает успешную отправку
type sendResponse struct {
	ResponseCode   int    `json:"response_code"`
	ResponseStatus string `json:"response_status"`
}
