package keyword

// lexicon of domain terms in display form, matched by lowercase substring.
// Short latin terms which are common substrings of ordinary words (api, lte, meta, intel)
// are left to the acronym pattern instead.
var lexicon = []string{
	// ai
	"AI", "인공지능", "머신러닝", "Machine Learning", "딥러닝", "Deep Learning", "ChatGPT", "GPT", "LLM",
	"생성형AI", "Generative AI", "OpenAI", "신경망", "Neural Network",

	// hardware and semiconductors
	"반도체", "Semiconductor", "메모리", "DRAM", "NAND", "HBM", "GPU", "CPU", "NPU", "칩셋", "Chip",
	"삼성전자", "Samsung", "SK하이닉스", "TSMC", "엔비디아", "Nvidia", "Apple", "Google", "Microsoft", "Amazon",

	// network and cloud
	"5G", "6G", "와이파이", "Wi-Fi", "클라우드", "Cloud", "데이터센터", "Data Center", "서버", "Server", "네트워크",

	// blockchain and fintech
	"블록체인", "Blockchain", "암호화폐", "Cryptocurrency", "비트코인", "Bitcoin", "이더리움", "Ethereum", "NFT", "DeFi",
	"메타버스", "Metaverse",

	// mobility and energy
	"자율주행", "Autonomous", "전기차", "Electric Vehicle", "테슬라", "Tesla", "배터리", "Battery", "로봇", "Robot",

	// security
	"보안", "Security", "해킹", "Hacking", "랜섬웨어", "Ransomware", "취약점", "Vulnerability", "개인정보", "Privacy",
	"사이버", "Cyber",

	// startup and finance
	"스타트업", "Startup", "투자", "Investment", "펀딩", "Funding", "상장", "IPO", "인수", "Acquisition",

	// software
	"오픈소스", "Open Source", "개발자", "Developer", "Python", "Kubernetes", "Docker",
}

// highValue terms get a scoring bonus, lowercase
var highValue = map[string]bool{
	"ai": true, "인공지능": true, "머신러닝": true, "딥러닝": true, "machine learning": true, "deep learning": true,
	"llm": true, "gpt": true, "chatgpt": true, "생성형ai": true, "generative ai": true, "openai": true,
	"gpu": true, "npu": true, "hbm": true, "반도체": true, "semiconductor": true, "dram": true, "nand": true,
	"클라우드": true, "cloud": true, "데이터센터": true, "data center": true,
}

// stopWords are rejected candidates, lowercase
var stopWords = map[string]bool{
	"기자": true, "뉴스": true, "특파원": true, "오늘": true, "매우": true, "기사": true, "사진": true, "영상": true,
	"제공": true, "입력": true, "것": true, "수": true, "등": true, "및": true, "그리고": true, "그러나": true,
	"하지만": true, "지난": true, "이번": true, "관련": true, "대한": true, "통해": true, "대해": true, "위해": true,
	"the": true, "and": true, "for": true, "are": true, "but": true, "not": true, "you": true, "all": true,
	"can": true, "had": true, "her": true, "was": true, "one": true, "our": true, "new": true, "its": true,
	"ceo": true, "cto": true, "usa": true, "us": true, "uk": true, "am": true, "pm": true, "rss": true, "url": true,
}
