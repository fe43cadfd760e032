package rotation

var greetings = [10]string{
	"Hey there",
	"Heyo",
	"What's up",
	"Howdy",
	"Good day",
	"Hey",
	"Hi there",
	"Welcome back",
	"Ciao",
	"Hello",
}

var closingTitles = [10]string{
	"That's a wrap! 🌯",
	"Mission accomplished! 🚀",
	"And we're done here! ✨",
	"Time to close the book! 📖",
	"That's all for today! 🌟",
	"End of transmission! 📡",
	"Final chapter complete! 📚",
	"Show's over, folks! 🎭",
	"Journey's end reached! 🏁",
	"That's all folks! 🐰",
}

var closingMessages = [10]string{
	"Thanks for sticking around till the end! If you found something interesting or have suggestions brewing, just hit reply – we're all ears! 👂",
	"You made it to the finish line! Got thoughts, feedback, or just want to say hi? Drop us a line – we love hearing from you! 💌",
	"Another issue in the books! If anything caught your eye or you've got ideas to share, reply away – your input means the world! 🌍",
	"Thanks for joining us on this coding journey! Questions, comments, or cool discoveries? Hit that reply button – let's chat! 💬",
	"You've reached the end of our digital adventure! Enjoyed the ride? Got feedback? Just reply – we're always excited to connect! 🎉",
	"Mission complete! If you loved it, learned something, or want to suggest improvements, reply and let us know – we thrive on your feedback! 🌱",
	"Final bytes processed! Your thoughts and suggestions fuel our passion – hit reply and share what's on your mind! 🔥",
	"Credits are rolling! If this issue sparked joy or ideas, don't be shy – reply and tell us all about it! ✨",
	"Journey's end! Whether you're buzzing with excitement or have constructive feedback, reply and keep the conversation going! 🗣️",
	"Thank you for getting to the end of this issue! If you enjoyed it or simply want to suggest something, hit reply and let us know! We'd love to hear from you! ❤️",
}

var introClosings = [41]string{
	"Enjoy the journey ahead!",
	"Let's dive in and learn together!",
	"Time to explore and experiment!",
	"May your code compile on the first try!",
	"Happy learning and building!",
	"Let's get coding!",
	"Enjoy this issue and keep shipping!",
	"Hope you find something inspiring!",
	"Ready to level up your skills?",
	"Make something you are proud of!",
	"One small step today counts!",
	"Build, break, learn, repeat!",
	"Stay curious and keep tinkering!",
	"Push an idea a little further!",
	"Create value, have fun!",
	"Sharpen your tools and ship!",
	"Try it, test it, teach it!",
	"Progress beats perfection!",
	"Learn a little, apply a lot!",
	"Trust the process and iterate!",
	"Let curiosity lead the way!",
	"Make it work, then make it better!",
	"Small wins add up fast!",
	"Build something delightful!",
	"Keep going, you are close!",
	"Sketch, code, refine!",
	"Turn ideas into experiments!",
	"Read, try, reflect, repeat!",
	"Ship the smallest useful thing!",
	"Improve 1% today!",
	"Stretch your skills a notch!",
	"Refactor with kindness to your future self!",
	"Document now, thank yourself later!",
	"Chase clarity, not cleverness!",
	"Learn by doing and sharing!",
	"Ask good questions, find better answers!",
	"Make it simple and solid!",
	"Quality is a habit. Practice!",
	"Explore the edges of your comfort zone!",
	"Keep building. The future is compounding!",
	"Happy reading and coding!",
}

var extraContentTitles = [10]string{
	"You have to BELIEVE in the power of more content! 🙏",
	"More awesome content for your reading pleasure! 📚",
	"Extra picks to feed your curiosity! 🧠",
	"Bonus content because we love you! ❤️",
	"Additional gems we couldn't leave out! 💎",
	"More quality content coming your way! ⭐",
	"Extra goodies for the curious minds! 🔍",
	"Supplementary reads worth your time! ⏰",
	"More content to expand your horizons! 🌅",
	"Hand-picked extras to keep your brain buzzing! ⚡",
}

var subjectEmojis = [32]string{
	"🤓", "🚀", "💡", "🔥", "⚡", "🧠", "🛠️", "📦",
	"🧩", "🎯", "🌟", "💻", "🔧", "📚", "🧪", "🌈",
	"🦄", "🐙", "🎉", "🔍", "🧭", "🏗️", "🪄", "🌍",
	"🧵", "🎨", "🕹️", "📡", "🐳", "🦀", "🐹", "☕",
}
